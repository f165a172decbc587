// Package pdf renders generated documents to PDF using the layout engine on an
// fpdf canvas with the standard core fonts.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/goliatone/go-docgen/pkg/layout"
	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/render"
)

// Name is the registry key of the PDF renderer.
const Name = "pdf"

const creator = "go-docgen"

// Option configures the renderer.
type Option func(*Renderer)

// WithGeometry overrides the A4 page geometry. Units are millimetres.
func WithGeometry(g layout.Geometry) Option {
	return func(r *Renderer) {
		r.geometry = g
	}
}

// WithCompression toggles stream compression (on by default).
func WithCompression(enabled bool) Option {
	return func(r *Renderer) {
		r.compress = enabled
	}
}

// WithExactTOC always numbers the table of contents from real page breaks.
func WithExactTOC() Option {
	return func(r *Renderer) {
		r.exactTOC = true
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Renderer writes paginated PDFs.
type Renderer struct {
	geometry layout.Geometry
	compress bool
	exactTOC bool
	logger   *slog.Logger
}

// New constructs a PDF renderer with A4 geometry.
func New(options ...Option) *Renderer {
	r := &Renderer{
		geometry: layout.A4(),
		compress: true,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	r.logger = r.logger.With("component", "pdf")
	return r
}

var _ render.Renderer = (*Renderer)(nil)

func (*Renderer) Name() string        { return Name }
func (*Renderer) ContentType() string { return "application/pdf" }
func (*Renderer) Extension() string   { return "pdf" }

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, doc model.GeneratedDocument, options render.RenderOptions) ([]byte, error) {
	out, _, err := r.Layout(ctx, doc, options)
	return out, err
}

// Layout renders doc and also returns the layout summary with real page
// placements.
func (r *Renderer) Layout(ctx context.Context, doc model.GeneratedDocument, options render.RenderOptions) ([]byte, layout.Result, error) {
	g := r.geometry
	if err := g.Validate(); err != nil {
		return nil, layout.Result{}, fmt.Errorf("pdf: %w", err)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetMargins(g.MarginLeft, g.MarginTop, g.MarginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(doc.TemplateName, true)
	pdf.SetSubject(doc.Category, true)
	pdf.SetAuthor(strings.Join(doc.Parties, ", "), true)
	pdf.SetCreator(creator, true)
	if !doc.GeneratedAt.IsZero() {
		pdf.SetCreationDate(doc.GeneratedAt)
		pdf.SetModificationDate(doc.GeneratedAt)
	}

	canvas := NewCanvas(pdf)
	style := layout.StyleFromTheme(options.Theme)
	canvas.SetFont(layout.Font{Family: style.Family, Size: g.FontSize})

	engineOptions := []layout.Option{
		layout.WithGeometry(g),
		layout.WithStyle(style),
		layout.WithLogger(r.logger),
	}
	if r.exactTOC || options.ExactTOC {
		engineOptions = append(engineOptions, layout.WithExactTOC())
	}
	result, err := layout.New(engineOptions...).Render(ctx, doc, canvas)
	if err != nil {
		return nil, layout.Result{}, fmt.Errorf("pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, layout.Result{}, fmt.Errorf("pdf: write document: %w", err)
	}
	r.logger.Debug("pdf written", "document", doc.ID, "pages", result.Pages, "bytes", buf.Len())
	return buf.Bytes(), result, nil
}
