package jsondoc

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/render"
)

func TestRender_StableFieldNames(t *testing.T) {
	doc := model.GeneratedDocument{
		ID:         "doc-1",
		TemplateID: "dt3",
		Sections:   []model.GeneratedSection{{ID: "inv-1", PageStart: 1, PageEnd: 1, Status: model.SectionDone}},
		Validation: model.NewValidationResult([]model.ValidationCheck{{ID: "completeness", Status: model.CheckWarning}}),
	}
	out, err := New().Render(context.Background(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"id", "templateId", "sections", "totalPages", "validation"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing key %q in %s", key, out)
		}
	}
	validation := decoded["validation"].(map[string]any)
	if validation["overallStatus"] != "warning" {
		t.Fatalf("unexpected overall status %v", validation["overallStatus"])
	}
}

func TestRender_Compact(t *testing.T) {
	out, err := New(WithIndent("")).Render(context.Background(), model.GeneratedDocument{ID: "x"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(string(out), "\n") != 1 {
		t.Fatalf("expected single-line output, got %q", out)
	}
}
