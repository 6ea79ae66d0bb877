// Package labs serves lab pages: an HTML fragment with the lab's labeled
// inputs plus the script that submits them, wrapped in a common template.
//
// Lab files are named lab<ID>.html and lab<ID>.js. They are looked up in an
// optional directory first and then in the set embedded in the binary.
// Fragments pass through a bluemonday policy that keeps form markup and
// drops scripts and event handlers; the script file is the only code a page
// carries.
package labs

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed assets/index.html.tmpl assets/lab5.html assets/lab5.js
var assets embed.FS

// ErrLabNotFound is returned when a lab has no page or no script.
var ErrLabNotFound = errors.New("lab not found")

// Page is the data the page template renders.
type Page struct {
	LabID       int
	HTMLContent template.HTML
	Script      template.JS
}

// Store looks up and renders lab pages.
type Store struct {
	sources []fs.FS
	policy  *bluemonday.Policy
	tpl     *template.Template
}

// NewStore creates a store reading dir before the embedded labs. An empty
// dir uses only the embedded labs.
func NewStore(dir string) (*Store, error) {
	embedded, err := fs.Sub(assets, "assets")
	if err != nil {
		return nil, fmt.Errorf("open embedded labs: %w", err)
	}

	var sources []fs.FS
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("labs directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("labs directory %s is not a directory", dir)
		}
		sources = append(sources, os.DirFS(dir))
	}
	sources = append(sources, embedded)

	raw, err := fs.ReadFile(embedded, "index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("read page template: %w", err)
	}
	tpl, err := template.New("lab").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	return &Store{
		sources: sources,
		policy:  formPolicy(),
		tpl:     tpl,
	}, nil
}

// formPolicy allows headings, text and the form controls lab pages use.
func formPolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()

	policy.AllowElements("h1", "h2", "h3", "p", "div", "span", "br", "b", "i", "em", "strong",
		"fieldset", "legend", "label", "input", "select", "option")
	policy.AllowAttrs("class", "id").Globally()
	policy.AllowAttrs("for").OnElements("label")
	policy.AllowAttrs("type", "name", "value", "min", "max", "step", "placeholder", "checked").
		OnElements("input")
	policy.AllowAttrs("name").OnElements("select")
	policy.AllowAttrs("value", "selected").OnElements("option")

	return policy
}

// Page loads lab id. Missing files yield ErrLabNotFound.
func (s *Store) Page(id int) (*Page, error) {
	htmlSource, err := s.read(fmt.Sprintf("lab%d.html", id))
	if err != nil {
		return nil, err
	}
	jsSource, err := s.read(fmt.Sprintf("lab%d.js", id))
	if err != nil {
		return nil, err
	}

	return &Page{
		LabID:       id,
		HTMLContent: template.HTML(s.policy.SanitizeBytes(htmlSource)),
		Script:      template.JS(jsSource),
	}, nil
}

// Render writes the full page of lab id to w. Nothing is written when the
// lab cannot be loaded or the template fails.
func (s *Store) Render(w io.Writer, id int) error {
	page, err := s.Page(id)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := s.tpl.Execute(&buf, page); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func (s *Store) read(name string) ([]byte, error) {
	for _, src := range s.sources {
		data, err := fs.ReadFile(src, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrLabNotFound, name)
}
