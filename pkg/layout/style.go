package layout

import (
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Style holds the typefaces and colours the engine draws with.
type Style struct {
	Family string
	Text   Color
	Brand  Color
	Muted  Color
	Rule   Color
	Badge  Color

	DocumentMarker      string
	ConfidentialityLine string
	ConfidentialNotice  string
}

// DefaultStyle returns the neutral house style.
func DefaultStyle() Style {
	return Style{
		Family:              "Helvetica",
		Text:                Color{R: 33, G: 37, B: 41},
		Brand:               Color{R: 30, G: 58, B: 138},
		Muted:               Color{R: 108, G: 117, B: 125},
		Rule:                Color{R: 173, G: 181, B: 189},
		Badge:               Color{R: 255, G: 255, B: 255},
		DocumentMarker:      "CONFIDENTIAL",
		ConfidentialityLine: "Confidential. Not for distribution without the consent of the parties.",
		ConfidentialNotice: "This document contains confidential and proprietary information intended solely for the named parties. " +
			"It was generated from structured answers and should be reviewed by qualified counsel before execution.",
	}
}

// StyleFromTheme overlays theme tokens onto the default style. Recognised
// tokens are brand, text, muted and rule, each a #rrggbb colour.
func StyleFromTheme(cfg *theme.RendererConfig) Style {
	style := DefaultStyle()
	if cfg == nil {
		return style
	}
	apply := func(token string, dst *Color) {
		if c, ok := ParseHexColor(cfg.Tokens[token]); ok {
			*dst = c
		}
	}
	apply("brand", &style.Brand)
	apply("text", &style.Text)
	apply("muted", &style.Muted)
	apply("rule", &style.Rule)
	return style
}

// ParseHexColor parses "#rgb" or "#rrggbb".
func ParseHexColor(value string) (Color, bool) {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(value) == 3 {
		value = string([]byte{value[0], value[0], value[1], value[1], value[2], value[2]})
	}
	if len(value) != 6 {
		return Color{}, false
	}
	n, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, true
}
