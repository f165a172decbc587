// Package jsondoc renders the generated document as indented JSON.
package jsondoc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/render"
)

// Name is the registry key of the JSON renderer.
const Name = "json"

// Renderer marshals documents with encoding/json.
type Renderer struct {
	indent string
}

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent overrides the two-space indent. An empty indent yields compact
// output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// New constructs the JSON renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

var _ render.Renderer = (*Renderer)(nil)

func (*Renderer) Name() string        { return Name }
func (*Renderer) ContentType() string { return "application/json" }
func (*Renderer) Extension() string   { return "json" }

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, doc model.GeneratedDocument, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		payload []byte
		err     error
	)
	if r.indent == "" {
		payload, err = json.Marshal(doc)
	} else {
		payload, err = json.MarshalIndent(doc, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("jsondoc: marshal document: %w", err)
	}
	return append(payload, '\n'), nil
}
