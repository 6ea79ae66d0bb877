// Package form turns a lab page into the JSON payload the lab server
// solves.
//
// The page is read the way the browser form handler reads the DOM: every
// <input> that is a direct child of a <label> becomes a Field whose key is
// the label's trimmed text and whose value is the input's value as the DOM
// reports it.
// Fields are collected in document order into a Payload, a later label
// overwriting an earlier one, and the payload is tagged with
// equation_type=implicit before it is serialized.
package form

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Field is one labeled input of a lab page.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ExtractFields parses an HTML document and returns every "label > input"
// element in document order. A page with no matching inputs yields an
// empty slice, not an error.
func ExtractFields(r io.Reader) ([]Field, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	fields := []Field{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isElement(n, atom.Input) && n.Parent != nil && isElement(n.Parent, atom.Label) {
			fields = append(fields, Field{
				Label: trimLabel(validUTF8(textContent(n.Parent))),
				Value: validUTF8(inputValue(n)),
			})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return fields, nil
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

// textContent concatenates the text of all descendants, like the DOM
// property of the same name. Comments are not text.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

// trimLabel strips leading and trailing white space, including the BOM,
// which String.prototype.trim also removes.
func trimLabel(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// validUTF8 replaces invalid bytes with U+FFFD, as the browser's decoder
// does before any label is compared.
func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

// floatingPoint matches an HTML "valid floating-point number".
var floatingPoint = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)

// inputValue returns the value an untouched input reports: the value
// attribute after the type's sanitization. Checkboxes and radios without a
// value attribute report "on".
func inputValue(n *html.Node) string {
	var (
		typ      string
		value    string
		hasValue bool
	)
	for _, attr := range n.Attr {
		switch attr.Key {
		case "value":
			if !hasValue {
				value, hasValue = attr.Val, true
			}
		case "type":
			typ = strings.ToLower(strings.TrimSpace(attr.Val))
		}
	}

	switch typ {
	case "checkbox", "radio":
		if !hasValue {
			return "on"
		}
		return value
	case "hidden", "range", "color", "date", "time", "datetime-local", "month", "week":
		return value
	case "number":
		if !floatingPoint.MatchString(value) {
			return ""
		}
		return value
	case "url", "email":
		return strings.Trim(stripNewlines(value), " \t\n\f\r")
	default:
		// text, search, tel, password and unknown types behave as text
		return stripNewlines(value)
	}
}

func stripNewlines(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
