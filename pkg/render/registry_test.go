package render

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docgen/pkg/model"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Extension() string   { return "txt" }
func (s stubRenderer) Render(context.Context, model.GeneratedDocument, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry(stubRenderer{name: "text"}, stubRenderer{name: "PDF"})

	if diff := cmp.Diff([]string{"pdf", "text"}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("Text") {
		t.Fatalf("expected case-insensitive lookup")
	}
	renderer, err := reg.Get(" pdf ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "PDF" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected empty name error")
	}
	reg.MustRegister(stubRenderer{name: "text"})
	if err := reg.Register(stubRenderer{name: "TEXT"}); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if _, err := reg.Get("docx"); !errors.Is(err, ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}
