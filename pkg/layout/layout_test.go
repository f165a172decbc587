package layout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-docgen/pkg/model"
)

type textOp struct {
	Page  int
	X, Y  float64
	W     float64
	Text  string
	Align Align
	Font  Font
}

// fakeCanvas measures every rune as runeWidth units and records drawing.
type fakeCanvas struct {
	runeWidth float64
	page      int
	font      Font
	texts     []textOp
	lines     int
	rects     int
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{runeWidth: 1}
}

func (f *fakeCanvas) AddPage()           { f.page++ }
func (f *fakeCanvas) SetFont(font Font)  { f.font = font }
func (f *fakeCanvas) SetTextColor(Color) {}
func (f *fakeCanvas) SetDrawColor(Color) {}
func (f *fakeCanvas) SetFillColor(Color) {}
func (f *fakeCanvas) StringWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * f.runeWidth
}
func (f *fakeCanvas) Text(x, y, w, _ float64, s string, align Align) {
	f.texts = append(f.texts, textOp{Page: f.page, X: x, Y: y, W: w, Text: s, Align: align, Font: f.font})
}
func (f *fakeCanvas) Line(_, _, _, _, _ float64)      { f.lines++ }
func (f *fakeCanvas) Rect(_, _, _, _ float64, _ bool) { f.rects++ }

func (f *fakeCanvas) textsOn(page int) []string {
	var out []string
	for _, op := range f.texts {
		if op.Page == page {
			out = append(out, op.Text)
		}
	}
	return out
}

func (f *fakeCanvas) find(text string) (textOp, bool) {
	for _, op := range f.texts {
		if op.Text == text {
			return op, true
		}
	}
	return textOp{}, false
}

// testGeometry yields 5-unit lines and 230 units of usable height: 46 lines
// per page.
func testGeometry() Geometry {
	return Geometry{
		PageWidth:    200,
		PageHeight:   300,
		MarginTop:    20,
		MarginRight:  10,
		MarginBottom: 20,
		MarginLeft:   10,
		HeaderBand:   10,
		FooterBand:   20,
		FontSize:     5,
		LineHeight:   1,
		PointScale:   1,
		IndentStep:   4,
		ParagraphGap: 1,
	}
}

func syntheticLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line%d", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestGeometry_Validate(t *testing.T) {
	if err := testGeometry().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := testGeometry().UsableHeight(); got != 230 {
		t.Fatalf("usable height = %v", got)
	}

	g := testGeometry()
	g.MarginBottom = 300
	if err := g.Validate(); !errors.Is(err, ErrNoUsableHeight) {
		t.Fatalf("expected ErrNoUsableHeight, got %v", err)
	}

	g = testGeometry()
	g.MarginLeft = 150
	g.MarginRight = 50
	if err := g.Validate(); !errors.Is(err, ErrNoContentWidth) {
		t.Fatalf("expected ErrNoContentWidth, got %v", err)
	}

	_, err := New(WithGeometry(g)).Render(context.Background(), model.GeneratedDocument{}, newFakeCanvas())
	if !errors.Is(err, ErrNoContentWidth) {
		t.Fatalf("expected render to reject geometry, got %v", err)
	}
}

func TestRender_PageBreakCorrectness(t *testing.T) {
	engine := New(WithGeometry(testGeometry()))
	perPage := 46

	for _, n := range []int{1, 45, 46, 47, 92, 93, 230} {
		t.Run(fmt.Sprintf("%d lines", n), func(t *testing.T) {
			for _, prior := range []int{0, 1, 3} {
				doc := model.GeneratedDocument{TemplateName: "Doc"}
				for i := 0; i < prior; i++ {
					doc.Sections = append(doc.Sections, model.GeneratedSection{
						ID: fmt.Sprintf("p%d", i), Title: "Prior", Level: 1, Content: syntheticLines(10 + i*40),
					})
				}
				doc.Sections = append(doc.Sections, model.GeneratedSection{ID: "target", Content: syntheticLines(n)})

				result, err := engine.Render(context.Background(), doc, newFakeCanvas())
				if err != nil {
					t.Fatalf("render: %v", err)
				}
				target := result.Sections[len(result.Sections)-1]
				got := target.EndPage - target.StartPage + 1
				want := (n + perPage - 1) / perPage
				if got != want {
					t.Fatalf("prior=%d: section spans %d pages, want %d", prior, got, want)
				}
				if result.Pages != target.EndPage {
					t.Fatalf("document ends on page %d, section on %d", result.Pages, target.EndPage)
				}
			}
		})
	}
}

func TestRender_StructureAndRunningElements(t *testing.T) {
	doc := model.GeneratedDocument{
		TemplateName:  "Invoice",
		Category:      "Finance",
		Parties:       []string{"Acme Inc", "Beta LLC"},
		EffectiveDate: "March 14, 2026",
		Sections: []model.GeneratedSection{
			{ID: "a", Title: "First", Level: 1, PageEstimate: 0.5, Content: "Hello world"},
			{ID: "b", Title: "Second", Level: 2, PageEstimate: 2.2, Content: syntheticLines(50)},
			{ID: "c", Title: "Third", Level: 1, PageEstimate: 0, Content: "End"},
		},
	}
	canvas := newFakeCanvas()
	result, err := New(WithGeometry(testGeometry())).Render(context.Background(), doc, canvas)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	wantPlacements := []Placement{
		{ID: "a", StartPage: 3, EndPage: 3},
		{ID: "b", StartPage: 4, EndPage: 5},
		{ID: "c", StartPage: 6, EndPage: 6},
	}
	if diff := cmp.Diff(wantPlacements, result.Sections); diff != "" {
		t.Fatalf("placements mismatch (-want +got):\n%s", diff)
	}
	if result.Pages != 6 || canvas.page != 6 {
		t.Fatalf("expected 6 pages, result=%d canvas=%d", result.Pages, canvas.page)
	}

	wantTOC := []TOCEntry{
		{ID: "a", Title: "First", Level: 1, Page: 3},
		{ID: "b", Title: "Second", Level: 2, Page: 4},
		{ID: "c", Title: "Third", Level: 1, Page: 7},
	}
	if diff := cmp.Diff(wantTOC, result.TOC); diff != "" {
		t.Fatalf("toc mismatch (-want +got):\n%s", diff)
	}

	title := strings.Join(canvas.textsOn(1), "|")
	for _, want := range []string{"Invoice", "Acme Inc", "Beta LLC", "Effective Date: March 14, 2026", "FINANCE"} {
		if !strings.Contains(title, want) {
			t.Fatalf("title page missing %q: %s", want, title)
		}
	}
	if strings.Contains(title, "Page 1") {
		t.Fatalf("title page must not carry a footer")
	}

	for page := 2; page <= 6; page++ {
		texts := canvas.textsOn(page)
		joined := strings.Join(texts, "|")
		if !strings.Contains(joined, "CONFIDENTIAL") || !strings.Contains(joined, fmt.Sprintf("Page %d", page)) {
			t.Fatalf("page %d missing header/footer: %s", page, joined)
		}
		if strings.Count(joined, fmt.Sprintf("Page %d", page)) != 1 {
			t.Fatalf("page %d footer drawn more than once", page)
		}
	}
}

func TestRender_TOCLeaderFillsGap(t *testing.T) {
	doc := model.GeneratedDocument{
		TemplateName: "Doc",
		Sections: []model.GeneratedSection{
			{ID: "a", Title: "Short", Level: 1, PageEstimate: 1},
			{ID: "b", Title: "Nested", Level: 2, PageEstimate: 1},
			{ID: "c", Title: strings.Repeat("Long title ", 30), Level: 1, PageEstimate: 1},
		},
	}
	canvas := newFakeCanvas()
	g := testGeometry()
	if _, err := New(WithGeometry(g)).Render(context.Background(), doc, canvas); err != nil {
		t.Fatalf("render: %v", err)
	}

	right := g.PageWidth - g.MarginRight
	var leaders []textOp
	for _, op := range canvas.texts {
		if op.Page == 2 && strings.Trim(op.Text, ".") == "" && op.Text != "" {
			leaders = append(leaders, op)
		}
	}
	if len(leaders) != 3 {
		t.Fatalf("expected 3 leaders, got %d", len(leaders))
	}
	for _, leader := range leaders {
		// Leader ends exactly where the one-digit page number starts.
		if end := leader.X + leader.W; end != right-1 {
			t.Fatalf("leader ends at %v, want %v", end, right-1)
		}
		if float64(len(leader.Text)) != leader.W {
			t.Fatalf("leader of %d dots does not fill gap %v", len(leader.Text), leader.W)
		}
	}

	nested, ok := canvas.find("Nested")
	if !ok || nested.X != g.MarginLeft+g.IndentStep {
		t.Fatalf("nested entry not indented: %+v", nested)
	}
	var truncated string
	for _, text := range canvas.textsOn(2) {
		if strings.HasPrefix(text, "Long title") {
			truncated = text
		}
	}
	if !strings.HasSuffix(truncated, "...") {
		t.Fatalf("expected truncated long title, got %q", truncated)
	}
}

func TestRender_ExactTOC(t *testing.T) {
	doc := model.GeneratedDocument{
		TemplateName: "Doc",
		Sections: []model.GeneratedSection{
			{ID: "a", Title: "A", Level: 1, PageEstimate: 0.2, Content: syntheticLines(120)},
			{ID: "b", Title: "B", Level: 1, PageEstimate: 0.2, Content: "short"},
		},
	}
	canvas := newFakeCanvas()
	result, err := New(WithGeometry(testGeometry()), WithExactTOC()).Render(context.Background(), doc, canvas)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for i, entry := range result.TOC {
		if entry.Page != result.Sections[i].StartPage {
			t.Fatalf("toc entry %s page %d, real start %d", entry.ID, entry.Page, result.Sections[i].StartPage)
		}
	}
	if result.TOC[1].Page == 4 {
		t.Fatalf("exact toc should differ from the estimate for an underestimated section")
	}
	if canvas.page != result.Pages {
		t.Fatalf("dry run must not add pages: canvas=%d result=%d", canvas.page, result.Pages)
	}
}

func TestRender_SubHeadingsAndIndents(t *testing.T) {
	doc := model.GeneratedDocument{
		TemplateName: "Doc",
		Sections: []model.GeneratedSection{{
			ID:    "s",
			Title: "Section",
			Content: "GENERAL TERMS\n\n1. Consulting\n\n" +
				"Plain paragraph\n(a) lettered item\n    deeper text\n- bullet\n☐ box",
		}},
	}
	canvas := newFakeCanvas()
	g := testGeometry()
	if _, err := New(WithGeometry(g)).Render(context.Background(), doc, canvas); err != nil {
		t.Fatalf("render: %v", err)
	}

	heading, _ := canvas.find("GENERAL TERMS")
	if heading.Font.Style != "B" {
		t.Fatalf("sub-heading should be bold, got %+v", heading.Font)
	}
	item, ok := canvas.find("1. Consulting")
	if !ok || item.Font.Style == "B" {
		t.Fatalf("single numbered line item should render as body text, got %+v", item.Font)
	}
	cases := map[string]float64{
		"Plain paragraph":   g.MarginLeft,
		"(a) lettered item": g.MarginLeft + g.IndentStep,
		"deeper text":       g.MarginLeft + 2*g.IndentStep,
		"- bullet":          g.MarginLeft + g.IndentStep,
		"☐ box":             g.MarginLeft + g.IndentStep,
	}
	for text, want := range cases {
		op, ok := canvas.find(text)
		if !ok {
			t.Fatalf("missing %q", text)
		}
		if op.X != want {
			t.Fatalf("%q drawn at x=%v, want %v", text, op.X, want)
		}
	}
}

func TestRender_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	doc := model.GeneratedDocument{Sections: []model.GeneratedSection{{ID: "s", Content: "x"}}}
	if _, err := New(WithGeometry(testGeometry())).Render(ctx, doc, newFakeCanvas()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWrapText(t *testing.T) {
	measure := func(s string) float64 { return float64(utf8.RuneCountInString(s)) }
	cases := []struct {
		text  string
		width float64
		want  []string
	}{
		{text: "the quick brown fox", width: 9, want: []string{"the quick", "brown fox"}},
		{text: "  spaced   out  ", width: 20, want: []string{"spaced out"}},
		{text: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
		{text: "a abcdefgh b", width: 3, want: []string{"a", "abc", "def", "gh", "b"}},
		{text: "", width: 10, want: nil},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, WrapText(measure, tc.text, tc.width)); diff != "" {
			t.Fatalf("WrapText(%q, %v) mismatch (-want +got):\n%s", tc.text, tc.width, diff)
		}
	}
}

func TestIsSubHeading(t *testing.T) {
	cases := map[string]bool{
		"GENERAL PROVISIONS": true,
		"4. PAYMENT TERMS":   true,
		"4.2 Payment Terms":  true,
		"Article 2 Term":     true,
		"4. Payment Terms":   false,
		"1. Consulting":      false,
		"4.3 Effect. Sections survive termination.": false,
		"Plain sentence here":    false,
		"AB":                     false,
		"LINE ONE\nLINE TWO":     false,
		"1. Consulting — 10 hrs": false,
	}
	for in, want := range cases {
		if got := isSubHeading(in); got != want {
			t.Fatalf("isSubHeading(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStyleFromTheme(t *testing.T) {
	style := StyleFromTheme(&theme.RendererConfig{Tokens: map[string]string{"brand": "#123456", "muted": "#abc", "rule": "bogus"}})
	if style.Brand != (Color{R: 0x12, G: 0x34, B: 0x56}) {
		t.Fatalf("brand = %+v", style.Brand)
	}
	if style.Muted != (Color{R: 0xaa, G: 0xbb, B: 0xcc}) {
		t.Fatalf("muted = %+v", style.Muted)
	}
	if style.Rule != DefaultStyle().Rule {
		t.Fatalf("invalid token should keep default rule colour")
	}
}
