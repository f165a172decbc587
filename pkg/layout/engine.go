package layout

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-docgen/pkg/model"
)

// FirstContentPage is where the TOC estimate starts counting: page 1 is the
// title page and page 2 the table of contents.
const FirstContentPage = 3

// Placement records the real pages a section occupied.
type Placement struct {
	ID        string `json:"id"`
	StartPage int    `json:"startPage"`
	EndPage   int    `json:"endPage"`
}

// TOCEntry is one rendered table of contents line.
type TOCEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
	Page  int    `json:"page"`
}

// Result summarises a render.
type Result struct {
	Pages    int         `json:"pages"`
	Sections []Placement `json:"sections"`
	TOC      []TOCEntry  `json:"toc"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithGeometry replaces the default A4 geometry.
func WithGeometry(g Geometry) Option {
	return func(e *Engine) {
		e.geometry = g
	}
}

// WithStyle replaces the default style.
func WithStyle(s Style) Option {
	return func(e *Engine) {
		e.style = s
	}
}

// WithExactTOC makes the TOC show the pages sections really start on, found
// by a measuring dry run. Without it the TOC shows running estimates.
func WithExactTOC() Option {
	return func(e *Engine) {
		e.exactTOC = true
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine lays out documents. It holds configuration only and may be shared.
type Engine struct {
	geometry Geometry
	style    Style
	exactTOC bool
	logger   *slog.Logger
}

// New constructs an Engine with A4 geometry and the default style.
func New(options ...Option) *Engine {
	e := &Engine{
		geometry: A4(),
		style:    DefaultStyle(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.style.Family == "" {
		e.style.Family = DefaultStyle().Family
	}
	return e
}

// Geometry returns the configured page geometry.
func (e *Engine) Geometry() Geometry {
	return e.geometry
}

// Render draws doc onto canvas. It fails on unusable geometry or when ctx is
// cancelled; content of any length is otherwise laid out across more pages.
func (e *Engine) Render(ctx context.Context, doc model.GeneratedDocument, canvas Canvas) (Result, error) {
	if err := e.geometry.Validate(); err != nil {
		return Result{}, err
	}
	if canvas == nil {
		return Result{}, fmt.Errorf("layout: canvas is required")
	}

	toc := EstimatedTOC(doc.Sections)
	if e.exactTOC {
		dry, err := e.pass(ctx, doc, measuringCanvas{inner: canvas}, toc)
		if err != nil {
			return Result{}, err
		}
		for i := range toc {
			toc[i].Page = dry.Sections[i].StartPage
		}
	}

	result, err := e.pass(ctx, doc, canvas, toc)
	if err != nil {
		return Result{}, err
	}
	e.logger.Debug("document laid out", "document", doc.ID, "pages", result.Pages, "sections", len(result.Sections), "exact_toc", e.exactTOC)
	return result, nil
}

func (e *Engine) pass(ctx context.Context, doc model.GeneratedDocument, canvas Canvas, toc []TOCEntry) (Result, error) {
	w := &writer{
		c:     canvas,
		g:     e.geometry,
		style: e.style,
		name:  doc.TemplateName,
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("layout: %w", err)
	}

	w.titlePage(doc)
	if err := w.tocPages(ctx, toc); err != nil {
		return Result{}, err
	}

	placements := make([]Placement, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		placement, err := w.section(ctx, section)
		if err != nil {
			return Result{}, err
		}
		placements = append(placements, placement)
	}
	w.footer()

	return Result{Pages: w.page, Sections: placements, TOC: toc}, nil
}

// EstimatedTOC numbers sections from FirstContentPage, advancing by each
// section's rounded-up estimate with a minimum of one page. Previews use it so
// their contents pages agree with the default PDF.
func EstimatedTOC(sections []model.GeneratedSection) []TOCEntry {
	entries := make([]TOCEntry, len(sections))
	page := FirstContentPage
	for i, section := range sections {
		entries[i] = TOCEntry{ID: section.ID, Title: section.Title, Level: section.Level, Page: page}
		step := int(math.Ceil(section.PageEstimate))
		if step < 1 {
			step = 1
		}
		page += step
	}
	return entries
}

// writer carries the cursor of one pass.
type writer struct {
	c     Canvas
	g     Geometry
	style Style
	name  string

	page int
	y    float64
}

func (w *writer) font(style string, size float64) float64 {
	w.c.SetFont(Font{Family: w.style.Family, Style: style, Size: size})
	return w.g.LineHeightFor(size)
}

func (w *writer) newPage(withHeader bool) {
	w.c.AddPage()
	w.page++
	w.y = w.g.MarginTop
	if withHeader {
		w.header()
		w.y = w.g.ContentTop()
	}
}

// breakPage closes the current page and opens the next one.
func (w *writer) breakPage() {
	w.footer()
	w.newPage(true)
}

// ensure starts a new page when a line of height h would cross the bottom of
// the content area. A line on an empty page is always drawn.
func (w *writer) ensure(h float64) {
	if w.y+h > w.g.ContentBottom()+epsilon && w.y > w.g.ContentTop()+epsilon {
		w.breakPage()
	}
}

func (w *writer) header() {
	g := w.g
	h := w.font("", g.FontSize*0.8)
	w.c.SetTextColor(w.style.Muted)
	w.c.Text(g.MarginLeft, g.MarginTop, g.ContentWidth(), h, w.name, AlignLeft)
	w.font("B", g.FontSize*0.8)
	w.c.SetTextColor(w.style.Brand)
	w.c.Text(g.MarginLeft, g.MarginTop, g.ContentWidth(), h, w.style.DocumentMarker, AlignRight)

	ruleY := g.MarginTop + math.Min(h+g.HeaderBand*0.1, g.HeaderBand*0.8)
	w.c.SetDrawColor(w.style.Rule)
	w.c.Line(g.MarginLeft, ruleY, g.PageWidth-g.MarginRight, ruleY, 0.2)
	w.c.SetTextColor(w.style.Text)
}

func (w *writer) footer() {
	if w.page <= 1 {
		return
	}
	g := w.g
	ruleY := g.ContentBottom() + g.FooterBand*0.3
	w.c.SetDrawColor(w.style.Rule)
	w.c.Line(g.MarginLeft, ruleY, g.PageWidth-g.MarginRight, ruleY, 0.2)

	h := w.font("", g.FontSize*0.75)
	w.c.SetTextColor(w.style.Muted)
	textY := ruleY + g.FooterBand*0.1
	w.c.Text(g.MarginLeft, textY, g.ContentWidth(), h, w.style.ConfidentialityLine, AlignLeft)
	w.c.Text(g.MarginLeft, textY, g.ContentWidth(), h, "Page "+strconv.Itoa(w.page), AlignRight)
	w.c.SetTextColor(w.style.Text)
}

func (w *writer) titlePage(doc model.GeneratedDocument) {
	g := w.g
	w.newPage(false)
	w.y = g.PageHeight * 0.28

	h := w.font("B", g.FontSize*2.2)
	w.c.SetTextColor(w.style.Brand)
	for _, line := range WrapText(w.c.StringWidth, doc.TemplateName, g.ContentWidth()) {
		w.c.Text(g.MarginLeft, w.y, g.ContentWidth(), h, line, AlignCenter)
		w.y += h
	}
	w.y += h * 0.5

	w.c.SetTextColor(w.style.Text)
	if len(doc.Parties) > 0 {
		h = w.font("I", g.FontSize)
		w.c.Text(g.MarginLeft, w.y, g.ContentWidth(), h, "by and between", AlignCenter)
		w.y += h
		h = w.font("B", g.FontSize*1.2)
		for i, party := range doc.Parties {
			if i > 0 {
				ah := w.font("I", g.FontSize)
				w.c.Text(g.MarginLeft, w.y, g.ContentWidth(), ah, "and", AlignCenter)
				w.y += ah
				w.font("B", g.FontSize*1.2)
			}
			for _, line := range WrapText(w.c.StringWidth, party, g.ContentWidth()) {
				w.c.Text(g.MarginLeft, w.y, g.ContentWidth(), h, line, AlignCenter)
				w.y += h
			}
		}
		w.y += h * 0.5
	}

	if doc.EffectiveDate != "" {
		h = w.font("", g.FontSize)
		w.c.Text(g.MarginLeft, w.y, g.ContentWidth(), h, "Effective Date: "+doc.EffectiveDate, AlignCenter)
		w.y += h * 1.5
	}

	if doc.Category != "" {
		label := strings.ToUpper(doc.Category)
		h = w.font("B", g.FontSize*0.8)
		pad := h * 0.6
		width := math.Min(w.c.StringWidth(label)+2*pad, g.ContentWidth())
		x := g.MarginLeft + (g.ContentWidth()-width)/2
		w.c.SetFillColor(w.style.Brand)
		w.c.Rect(x, w.y, width, h+pad, true)
		w.c.SetTextColor(w.style.Badge)
		w.c.Text(x, w.y+pad/2, width, h, label, AlignCenter)
		w.c.SetTextColor(w.style.Text)
		w.y += h + pad*2
	}

	w.c.SetDrawColor(w.style.Rule)
	w.c.Line(g.MarginLeft+g.ContentWidth()*0.2, w.y, g.PageWidth-g.MarginRight-g.ContentWidth()*0.2, w.y, 0.4)

	h = w.font("", g.FontSize*0.8)
	notice := WrapText(w.c.StringWidth, w.style.ConfidentialNotice, g.ContentWidth()*0.8)
	w.y = g.PageHeight - g.MarginBottom - h*float64(len(notice)+2)
	w.font("B", g.FontSize*0.8)
	w.c.SetTextColor(w.style.Brand)
	w.c.Text(g.MarginLeft, w.y, g.ContentWidth(), h, w.style.DocumentMarker, AlignCenter)
	w.y += h
	w.font("", g.FontSize*0.8)
	w.c.SetTextColor(w.style.Muted)
	for _, line := range notice {
		w.c.Text(g.MarginLeft, w.y, g.ContentWidth(), h, line, AlignCenter)
		w.y += h
	}
	w.c.SetTextColor(w.style.Text)
}

func (w *writer) tocPages(ctx context.Context, entries []TOCEntry) error {
	g := w.g
	w.newPage(true)

	h := w.font("B", g.FontSize*1.5)
	w.c.SetTextColor(w.style.Brand)
	w.c.Text(g.MarginLeft, w.y, g.ContentWidth(), h, "Table of Contents", AlignLeft)
	w.y += h * 1.5
	w.c.SetTextColor(w.style.Text)

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("layout: table of contents: %w", err)
		}
		style := ""
		if entry.Level <= 1 {
			style = "B"
		}
		h = w.font(style, g.FontSize)
		w.ensure(h)
		w.font(style, g.FontSize)
		w.tocLine(entry, i, h)
		w.y += h
	}
	return nil
}

// tocLine draws title, dotted leader and right-aligned page number. The
// leader fills the measured gap exactly; titles leaving room for fewer than
// three dots are truncated.
func (w *writer) tocLine(entry TOCEntry, index int, h float64) {
	g := w.g
	indent := 0.0
	if entry.Level > 1 {
		indent = g.IndentStep
	}
	title := entry.Title
	if strings.TrimSpace(title) == "" {
		title = "Section " + strconv.Itoa(index+1)
	}

	number := strconv.Itoa(entry.Page)
	numberWidth := w.c.StringWidth(number)
	dotWidth := w.c.StringWidth(".")
	if dotWidth <= 0 {
		dotWidth = 1
	}
	x := g.MarginLeft + indent
	available := g.ContentWidth() - indent - numberWidth

	titleWidth := w.c.StringWidth(title)
	if available-titleWidth < 3*dotWidth {
		title = truncate(w.c.StringWidth, title, available-3*dotWidth)
		titleWidth = w.c.StringWidth(title)
	}
	gap := available - titleWidth
	dots := int(math.Floor(gap/dotWidth + epsilon))

	w.c.Text(x, w.y, titleWidth, h, title, AlignLeft)
	if dots > 0 {
		w.c.SetTextColor(w.style.Muted)
		w.c.Text(x+titleWidth, w.y, gap, h, strings.Repeat(".", dots), AlignRight)
		w.c.SetTextColor(w.style.Text)
	}
	w.c.Text(x+available, w.y, numberWidth, h, number, AlignRight)
}

func (w *writer) section(ctx context.Context, section model.GeneratedSection) (Placement, error) {
	g := w.g
	w.breakPage()
	placement := Placement{ID: section.ID, StartPage: w.page}

	if title := strings.TrimSpace(section.Title); title != "" {
		size := g.FontSize * 1.5
		if section.Level > 1 {
			size = g.FontSize * 1.25
		}
		h := w.font("B", size)
		w.c.SetTextColor(w.style.Brand)
		for _, line := range WrapText(w.c.StringWidth, title, g.ContentWidth()) {
			w.ensure(h)
			w.font("B", size)
			w.c.SetTextColor(w.style.Brand)
			w.c.Text(g.MarginLeft, w.y, g.ContentWidth(), h, line, AlignLeft)
			w.y += h
		}
		w.c.SetTextColor(w.style.Text)
		w.y += w.g.LineHeightFor(g.FontSize) * 0.5
	}

	for _, paragraph := range splitParagraphs(section.Content) {
		if err := w.paragraph(ctx, section.ID, paragraph); err != nil {
			return Placement{}, err
		}
	}

	placement.EndPage = w.page
	return placement, nil
}

func (w *writer) paragraph(ctx context.Context, sectionID, paragraph string) error {
	g := w.g
	body := w.g.LineHeightFor(g.FontSize)

	if isSubHeading(paragraph) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("layout: section %s: %w", sectionID, err)
		}
		h := w.font("B", g.FontSize)
		for _, line := range WrapText(w.c.StringWidth, strings.TrimSpace(paragraph), g.ContentWidth()) {
			w.ensure(h)
			w.font("B", g.FontSize)
			w.c.Text(g.MarginLeft, w.y, g.ContentWidth(), h, line, AlignLeft)
			w.y += h
		}
		w.y += body * g.ParagraphGap * 0.5
		return nil
	}

	for _, raw := range strings.Split(paragraph, "\n") {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		indent := float64(indentLevel(raw)) * g.IndentStep
		width := g.ContentWidth() - indent
		if width <= 0 {
			indent, width = 0, g.ContentWidth()
		}

		h := w.font("", g.FontSize)
		for _, line := range WrapText(w.c.StringWidth, text, width) {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("layout: section %s: %w", sectionID, err)
			}
			w.ensure(h)
			w.font("", g.FontSize)
			w.c.Text(g.MarginLeft+indent, w.y, width, h, line, AlignLeft)
			w.y += h
		}
	}
	w.y += body * g.ParagraphGap
	return nil
}
