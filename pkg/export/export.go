// Package export turns generated documents into artifacts: files on disk,
// in-memory buffers for previews, or a plain-text linearisation.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/renderers/html"
	"github.com/goliatone/go-docgen/pkg/renderers/jsondoc"
	"github.com/goliatone/go-docgen/pkg/renderers/pdf"
	"github.com/goliatone/go-docgen/pkg/renderers/text"
)

// DefaultRegistry returns a registry holding the built-in renderers: pdf,
// text, html and json.
func DefaultRegistry(options ...pdf.Option) *render.Registry {
	return render.NewRegistry(
		pdf.New(options...),
		text.New(),
		html.New(),
		jsondoc.New(),
	)
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithRegistry swaps the renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(e *Exporter) {
		if registry != nil {
			e.registry = registry
		}
	}
}

// WithRenderOptions sets the options passed to every renderer.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(e *Exporter) {
		e.options = options
	}
}

// WithClock overrides the clock used for suggested filenames.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Exporter renders documents through a registry and delivers the bytes.
type Exporter struct {
	registry *render.Registry
	options  render.RenderOptions
	now      func() time.Time
	logger   *slog.Logger
}

// New constructs an Exporter backed by DefaultRegistry unless overridden.
func New(options ...Option) *Exporter {
	e := &Exporter{}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.registry == nil {
		e.registry = DefaultRegistry()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.logger = e.logger.With("component", "export")
	return e
}

// Registry exposes the renderer registry.
func (e *Exporter) Registry() *render.Registry {
	return e.registry
}

// Artifact is one rendered output.
type Artifact struct {
	Format      string
	ContentType string
	Filename    string
	Data        []byte
}

// Render produces the artifact for format.
func (e *Exporter) Render(ctx context.Context, doc model.GeneratedDocument, format string) (Artifact, error) {
	renderer, err := e.registry.Get(format)
	if err != nil {
		return Artifact{}, fmt.Errorf("export: %w", err)
	}
	data, err := renderer.Render(ctx, doc, e.options)
	if err != nil {
		return Artifact{}, fmt.Errorf("export: render %s: %w", renderer.Name(), err)
	}
	return Artifact{
		Format:      renderer.Name(),
		ContentType: renderer.ContentType(),
		Filename:    SuggestedFilename(doc, renderer.Extension(), e.now()),
		Data:        data,
	}, nil
}

// Bytes renders into a buffer, used for previews.
func (e *Exporter) Bytes(ctx context.Context, doc model.GeneratedDocument, format string) ([]byte, error) {
	artifact, err := e.Render(ctx, doc, format)
	if err != nil {
		return nil, err
	}
	return artifact.Data, nil
}

// Write renders and copies the artifact to w.
func (e *Exporter) Write(ctx context.Context, doc model.GeneratedDocument, format string, w io.Writer) error {
	artifact, err := e.Render(ctx, doc, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(artifact.Data); err != nil {
		return fmt.Errorf("export: write %s: %w", artifact.Format, err)
	}
	return nil
}

// WriteFile renders the artifact into dir under its suggested filename and
// returns the written path. dir is created when missing.
func (e *Exporter) WriteFile(ctx context.Context, doc model.GeneratedDocument, format, dir string) (string, error) {
	artifact, err := e.Render(ctx, doc, format)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	e.logger.Info("artifact written",
		"format", artifact.Format,
		"path", path,
		"bytes", len(artifact.Data),
	)
	return path, nil
}

// Text returns the plain-text linearisation.
func Text(doc model.GeneratedDocument) string {
	return text.Linearize(doc)
}

// SuggestedFilename derives "<slug(template name)>-<YYYY-MM-DD>.<ext>".
func SuggestedFilename(doc model.GeneratedDocument, ext string, now time.Time) string {
	name := slug(doc.TemplateName)
	if name == "" {
		name = slug(doc.TemplateID)
	}
	if name == "" {
		name = "document"
	}
	filename := name + "-" + now.Format("2006-01-02")
	if ext = strings.TrimPrefix(strings.TrimSpace(ext), "."); ext != "" {
		filename += "." + ext
	}
	return filename
}

func slug(value string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(value) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
