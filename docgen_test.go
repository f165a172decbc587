package docgen

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-docgen/pkg/testsupport"
)

func TestTemplates(t *testing.T) {
	defs := Templates()
	if len(defs) != 6 || defs[0].ID != "dt1" {
		t.Fatalf("unexpected templates: %d", len(defs))
	}
}

func TestEmbeddedDefinitions(t *testing.T) {
	matches, err := fs.Glob(EmbeddedDefinitions(), "*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 6 {
		t.Fatalf("expected six definition files, got %v", matches)
	}
}

func TestRender_Text(t *testing.T) {
	out, err := Render(context.Background(), "dt3", testsupport.InvoiceAnswers(), "text")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "Invoice Number: INV-2026-0007") {
		t.Fatalf("text export missing invoice number")
	}
}

func TestLoadAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	if err := os.WriteFile(path, []byte(`{"q1":"Acme Inc","q8":true}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadAnswers(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got["q1"] != "Acme Inc" || got["q8"] != "Yes" {
		t.Fatalf("unexpected answers %v", got)
	}
}
