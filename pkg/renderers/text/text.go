// Package text renders a generated document as a deterministic plain-text
// dump suitable for diffs and golden files.
package text

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/render"
)

const (
	// Name is the registry key of the text renderer.
	Name = "text"

	bannerWidth = 72
	endMarker   = "END OF DOCUMENT"
)

var banner = strings.Repeat("=", bannerWidth)

// Renderer produces the plain-text linearisation.
type Renderer struct{}

// New constructs the text renderer.
func New() *Renderer {
	return &Renderer{}
}

var _ render.Renderer = (*Renderer)(nil)

// Name implements render.Renderer.
func (*Renderer) Name() string { return Name }

// ContentType implements render.Renderer.
func (*Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Extension implements render.Renderer.
func (*Renderer) Extension() string { return "txt" }

// Render implements render.Renderer.
func (*Renderer) Render(ctx context.Context, doc model.GeneratedDocument, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(Linearize(doc)), nil
}

// Linearize returns the text form: a banner with metadata, then each section
// as its title, a dash underline of the same length and the raw content,
// separated by blank lines, then a closing banner.
func Linearize(doc model.GeneratedDocument) string {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString(doc.TemplateName + "\n")
	b.WriteString("Generated: " + doc.GeneratedAt.Format(time.RFC3339) + "\n")
	b.WriteString("Total Pages: " + strconv.Itoa(doc.TotalPages) + "\n")
	b.WriteString("Sections: " + strconv.Itoa(len(doc.Sections)) + "\n")
	b.WriteString(banner + "\n\n")

	for _, section := range doc.Sections {
		b.WriteString(section.Title + "\n")
		b.WriteString(strings.Repeat("-", utf8.RuneCountInString(section.Title)) + "\n\n")
		b.WriteString(section.Content + "\n\n")
	}

	b.WriteString(banner + "\n")
	b.WriteString(endMarker + "\n")
	b.WriteString(banner + "\n")
	return b.String()
}
