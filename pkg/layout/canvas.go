package layout

// Align positions text inside its cell.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Font selects a face. Style is "" (regular), "B", "I" or "BI"; Size is in
// points.
type Font struct {
	Family string
	Style  string
	Size   float64
}

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Canvas is the drawing surface the engine targets. Coordinates are in the
// geometry's units with the origin at the top-left corner; Text draws s in the
// cell whose top-left corner is (x, y).
type Canvas interface {
	AddPage()
	SetFont(font Font)
	SetTextColor(c Color)
	SetDrawColor(c Color)
	SetFillColor(c Color)
	StringWidth(s string) float64
	Text(x, y, w, h float64, s string, align Align)
	Line(x1, y1, x2, y2, width float64)
	Rect(x, y, w, h float64, fill bool)
}

// measuringCanvas forwards measurement and discards drawing. The engine uses
// it for the dry run that discovers real section start pages.
type measuringCanvas struct {
	inner Canvas
}

func (m measuringCanvas) AddPage() {}
func (m measuringCanvas) SetFont(font Font) { m.inner.SetFont(font) }
func (m measuringCanvas) SetTextColor(Color) {}
func (m measuringCanvas) SetDrawColor(Color) {}
func (m measuringCanvas) SetFillColor(Color) {}
func (m measuringCanvas) StringWidth(s string) float64 { return m.inner.StringWidth(s) }
func (m measuringCanvas) Text(_, _, _, _ float64, _ string, _ Align) {}
func (m measuringCanvas) Line(_, _, _, _, _ float64) {}
func (m measuringCanvas) Rect(_, _, _, _ float64, _ bool) {}

var _ Canvas = measuringCanvas{}
