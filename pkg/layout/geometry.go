package layout

import "errors"

var (
	// ErrNoUsableHeight is returned when margins and bands leave no room for text.
	ErrNoUsableHeight = errors.New("layout: geometry leaves no usable height")
	// ErrNoContentWidth is returned when side margins consume the page width.
	ErrNoContentWidth = errors.New("layout: geometry leaves no content width")
)

// Geometry is the fixed page frame in canvas units. Font sizes are points;
// PointScale converts one point into canvas units.
type Geometry struct {
	PageWidth  float64 `json:"pageWidth" yaml:"pageWidth" toml:"page_width"`
	PageHeight float64 `json:"pageHeight" yaml:"pageHeight" toml:"page_height"`

	MarginTop    float64 `json:"marginTop" yaml:"marginTop" toml:"margin_top"`
	MarginRight  float64 `json:"marginRight" yaml:"marginRight" toml:"margin_right"`
	MarginBottom float64 `json:"marginBottom" yaml:"marginBottom" toml:"margin_bottom"`
	MarginLeft   float64 `json:"marginLeft" yaml:"marginLeft" toml:"margin_left"`

	HeaderBand float64 `json:"headerBand" yaml:"headerBand" toml:"header_band"`
	FooterBand float64 `json:"footerBand" yaml:"footerBand" toml:"footer_band"`

	FontSize   float64 `json:"fontSize" yaml:"fontSize" toml:"font_size"`
	LineHeight float64 `json:"lineHeight" yaml:"lineHeight" toml:"line_height"`
	PointScale float64 `json:"pointScale" yaml:"pointScale" toml:"point_scale"`

	// IndentStep is the horizontal offset per list nesting level.
	IndentStep float64 `json:"indentStep" yaml:"indentStep" toml:"indent_step"`
	// ParagraphGap is the vertical space after each paragraph, in lines.
	ParagraphGap float64 `json:"paragraphGap" yaml:"paragraphGap" toml:"paragraph_gap"`
}

// A4 returns portrait A4 geometry in millimetres with 10.5pt body text.
func A4() Geometry {
	return Geometry{
		PageWidth:    210,
		PageHeight:   297,
		MarginTop:    18,
		MarginRight:  20,
		MarginBottom: 15,
		MarginLeft:   20,
		HeaderBand:   12,
		FooterBand:   14,
		FontSize:     10.5,
		LineHeight:   1.45,
		PointScale:   25.4 / 72,
		IndentStep:   6,
		ParagraphGap: 0.6,
	}
}

// Letter returns portrait US Letter geometry in millimetres.
func Letter() Geometry {
	g := A4()
	g.PageWidth = 215.9
	g.PageHeight = 279.4
	return g
}

// Validate reports geometry that cannot hold a single line of text.
func (g Geometry) Validate() error {
	if g.ContentWidth() <= 0 {
		return ErrNoContentWidth
	}
	if g.UsableHeight() <= 0 || g.UsableHeight() < g.LineHeightFor(g.FontSize) {
		return ErrNoUsableHeight
	}
	return nil
}

// ContentTop is the first y a body line may occupy.
func (g Geometry) ContentTop() float64 {
	return g.MarginTop + g.HeaderBand
}

// ContentBottom is the y no body line may cross.
func (g Geometry) ContentBottom() float64 {
	return g.PageHeight - g.MarginBottom - g.FooterBand
}

// UsableHeight is the vertical space available to body text on one page.
func (g Geometry) UsableHeight() float64 {
	return g.ContentBottom() - g.ContentTop()
}

// ContentWidth is the horizontal space between the side margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// LineHeightFor returns the advance of one line set at size points.
func (g Geometry) LineHeightFor(size float64) float64 {
	scale := g.PointScale
	if scale <= 0 {
		scale = 1
	}
	multiplier := g.LineHeight
	if multiplier <= 0 {
		multiplier = 1
	}
	return size * scale * multiplier
}
