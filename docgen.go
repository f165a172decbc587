// Package docgen is the top-level entry point: it wires the template
// registry, the generation pipeline and the exporters behind a few helpers.
package docgen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-docgen/internal/answers"
	"github.com/goliatone/go-docgen/pkg/export"
	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/orchestrator"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/templates"
)

// Answers maps intake question ids to values.
type Answers = model.Answers

// GeneratedDocument is the result of one pipeline run.
type GeneratedDocument = model.GeneratedDocument

// RenderOptions carries per-request presentation settings.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the pipeline constructor from the top-level module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Templates lists the built-in templates ordered by id.
func Templates() []model.TemplateDef {
	return templates.Default().List()
}

// EmbeddedDefinitions exposes the built-in template question files so callers
// can extend them or load them into their own registry.
func EmbeddedDefinitions() fs.FS {
	return templates.DefinitionsFS()
}

// Generate runs the pipeline for templateID.
func Generate(ctx context.Context, templateID string, answers Answers, options ...orchestrator.Option) (*GeneratedDocument, error) {
	return orchestrator.New(options...).Run(ctx, orchestrator.Request{
		TemplateID: templateID,
		Answers:    answers,
	})
}

// Render generates a document and renders it in format (pdf, html, text or
// json) with the default exporter.
func Render(ctx context.Context, templateID string, answers Answers, format string, options ...orchestrator.Option) ([]byte, error) {
	doc, err := Generate(ctx, templateID, answers, options...)
	if err != nil {
		return nil, err
	}
	return export.New().Bytes(ctx, *doc, format)
}

// LoadAnswers reads a YAML or JSON answers document from a path or an
// http(s) URL.
func LoadAnswers(ctx context.Context, location string) (Answers, error) {
	loader := answers.NewLoader(answers.WithHTTP())
	return loader.Load(ctx, answers.ParseSource(location))
}
