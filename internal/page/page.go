// Package page loads lab pages so their labeled inputs can be read.
package page

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/concave-dev/labform/internal/form"
	"github.com/concave-dev/labform/internal/logging"
	"github.com/go-resty/resty/v2"
)

// Source yields the HTML of a lab page.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// FileSource reads a page saved on disk.
type FileSource struct {
	Path string
}

// Open opens the file.
func (s FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page %s: %w", s.Path, err)
	}
	return f, nil
}

func (s FileSource) String() string {
	return s.Path
}

// HTTPSource fetches a page served by labd.
type HTTPSource struct {
	URL    string
	client *resty.Client
}

// NewHTTPSource returns a source for url. A zero timeout waits indefinitely.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetLogger(logging.RestyLogger{}).
		SetTimeout(timeout).
		SetHeader("Accept", "text/html")

	return &HTTPSource{URL: url, client: client}
}

// Open downloads the page. Anything but 200 is an error.
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page %s: %w", s.URL, err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fetching page %s failed with status %d", s.URL, resp.StatusCode())
	}

	logging.Debug("Fetched page %s (%d bytes, took %v)", s.URL, len(resp.Body()), resp.Time())
	return io.NopCloser(bytes.NewReader(resp.Body())), nil
}

func (s *HTTPSource) String() string {
	return s.URL
}

// Load reads src and extracts its labeled inputs.
func Load(ctx context.Context, src Source) ([]form.Field, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	fields, err := form.ExtractFields(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	logging.Debug("Found %d labeled inputs in %s", len(fields), src)
	return fields, nil
}
