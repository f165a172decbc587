// Package render defines the output format contract and a registry of
// renderers keyed by format name.
package render

import (
	"context"

	"github.com/goliatone/go-docgen/pkg/model"
)

// Renderer converts a generated document into one output format.
type Renderer interface {
	Name() string
	ContentType() string
	// Extension is the file extension without the leading dot.
	Extension() string
	Render(ctx context.Context, doc model.GeneratedDocument, options RenderOptions) ([]byte, error)
}
