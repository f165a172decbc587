package text

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/testsupport"
)

func sampleDocument() model.GeneratedDocument {
	return model.GeneratedDocument{
		TemplateName: "Invoice",
		GeneratedAt:  time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
		TotalPages:   3,
		Sections: []model.GeneratedSection{
			{ID: "inv-1", Title: "Invoice Details", Content: "Invoice Number: INV-2026-0007\nFrom: Acme Inc\n\nPlease reference the invoice number."},
			{ID: "inv-2", Title: "Line Items", Content: "1. Consulting — 10 hrs"},
		},
	}
}

func TestLinearize_Golden(t *testing.T) {
	got := Linearize(sampleDocument())

	path := filepath.Join("testdata", "invoice.golden")
	if testsupport.WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, path)
	if got != want {
		t.Fatalf("text export mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestLinearize_RoundTripsSectionContent(t *testing.T) {
	doc := sampleDocument()
	out := Linearize(doc)

	rest := out
	for _, section := range doc.Sections {
		header := section.Title + "\n" + strings.Repeat("-", len([]rune(section.Title))) + "\n\n"
		if strings.Count(out, header) != 1 {
			t.Fatalf("title %q should appear exactly once", section.Title)
		}
		idx := strings.Index(rest, header)
		if idx < 0 {
			t.Fatalf("section %s out of order", section.ID)
		}
		rest = rest[idx+len(header):]
		if !strings.HasPrefix(rest, section.Content+"\n\n") {
			t.Fatalf("section %s content not reproduced verbatim", section.ID)
		}
		rest = rest[len(section.Content)+2:]
	}
	if !strings.HasPrefix(rest, banner+"\n"+endMarker) {
		t.Fatalf("missing closing banner, got %q", rest)
	}
}

func TestRenderer_Contract(t *testing.T) {
	var r render.Renderer = New()
	if r.Name() != "text" || r.Extension() != "txt" || !strings.HasPrefix(r.ContentType(), "text/plain") {
		t.Fatalf("unexpected renderer metadata")
	}
	out, err := r.Render(context.Background(), sampleDocument(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "Invoice Number: INV-2026-0007") {
		t.Fatalf("missing invoice number")
	}
}
