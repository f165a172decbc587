package pdf

import (
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/goliatone/go-docgen/pkg/layout"
)

// symbols maps glyphs missing from the core fonts' cp1252 encoding to ASCII
// stand-ins before translation.
var symbols = strings.NewReplacer(
	"☐", "[ ]",
	"☑", "[x]",
	"☒", "[x]",
	"✓", "x",
)

// Canvas adapts an fpdf document to layout.Canvas. Text is translated from
// UTF-8 to cp1252 for the core fonts, and measurement runs on the translated
// bytes so wrapping matches what is drawn.
type Canvas struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

// NewCanvas wraps pdf. The caller owns page setup and output.
func NewCanvas(pdf *fpdf.Fpdf) *Canvas {
	return &Canvas{pdf: pdf, translate: pdf.UnicodeTranslatorFromDescriptor("")}
}

var _ layout.Canvas = (*Canvas)(nil)

func (c *Canvas) encode(s string) string {
	return c.translate(symbols.Replace(s))
}

func (c *Canvas) AddPage() { c.pdf.AddPage() }

func (c *Canvas) SetFont(font layout.Font) {
	c.pdf.SetFont(font.Family, font.Style, font.Size)
}

func (c *Canvas) SetTextColor(col layout.Color) {
	c.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
}

func (c *Canvas) SetDrawColor(col layout.Color) {
	c.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
}

func (c *Canvas) SetFillColor(col layout.Color) {
	c.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
}

func (c *Canvas) StringWidth(s string) float64 {
	return c.pdf.GetStringWidth(c.encode(s))
}

func (c *Canvas) Text(x, y, w, h float64, s string, align layout.Align) {
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, h, c.encode(s), "", 0, string(align), false, 0, "")
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64) {
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *Canvas) Rect(x, y, w, h float64, fill bool) {
	style := "D"
	if fill {
		style = "F"
	}
	c.pdf.Rect(x, y, w, h, style)
}
