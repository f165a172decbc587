package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions carry per-request presentation settings. Renderers ignore the
// fields they have no use for.
type RenderOptions struct {
	// Theme supplies brand tokens and CSS variables. Nil means the house style.
	Theme *theme.RendererConfig
	// ExactTOC asks paginated renderers to number the table of contents from
	// real page breaks instead of estimates.
	ExactTOC bool
}
