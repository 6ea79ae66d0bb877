package labs

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/concave-dev/labform/internal/form"
	"github.com/google/go-cmp/cmp"
)

func TestStore_EmbeddedLab5(t *testing.T) {
	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	var buf bytes.Buffer
	if err := store.Render(&buf, 5); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	page := buf.String()

	if strings.Contains(page, "alert(") {
		t.Error("inline script from the fragment survived sanitizing")
	}
	if !strings.Contains(page, "function solve()") {
		t.Error("lab script missing from page")
	}

	fields, err := form.ExtractFields(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ExtractFields() error = %v", err)
	}
	want := []form.Field{{Label: "N", Value: "10"}, {Label: "K", Value: "100"}, {Label: "T", Value: "1"}}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("rendered fields mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_MissingLab(t *testing.T) {
	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	var buf bytes.Buffer
	err = store.Render(&buf, 42)
	if !errors.Is(err, ErrLabNotFound) {
		t.Fatalf("Render() error = %v, want ErrLabNotFound", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render() wrote %d bytes for a missing lab", buf.Len())
	}
}

func TestStore_DirectoryOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	fragment := `<label onclick="steal()">h <input value="0.01"></label>`
	if err := os.WriteFile(filepath.Join(dir, "lab5.html"), []byte(fragment), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lab6.html"), []byte(`<label>a <input value="1"></label>`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lab6.js"), []byte(`function solve() {}`), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	page, err := store.Page(5)
	if err != nil {
		t.Fatalf("Page(5) error = %v", err)
	}
	if strings.Contains(string(page.HTMLContent), "onclick") {
		t.Errorf("event handler survived sanitizing: %s", page.HTMLContent)
	}
	if !strings.Contains(string(page.HTMLContent), `value="0.01"`) {
		t.Errorf("override fragment not used: %s", page.HTMLContent)
	}
	if !strings.Contains(string(page.Script), "function solve()") {
		t.Error("embedded script not used as fallback")
	}

	if _, err := store.Page(6); err != nil {
		t.Errorf("Page(6) error = %v", err)
	}
}

func TestNewStore_BadDirectory(t *testing.T) {
	if _, err := NewStore(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("NewStore() with a missing directory succeeded")
	}
}
