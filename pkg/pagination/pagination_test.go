package pagination

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docgen/pkg/model"
)

type pageRange struct{ Start, End int }

func ranges(sections []model.GeneratedSection) []pageRange {
	out := make([]pageRange, len(sections))
	for i, s := range sections {
		out[i] = pageRange{s.PageStart, s.PageEnd}
	}
	return out
}

func TestEstimate_Cursor(t *testing.T) {
	sections := []model.GeneratedSection{
		{ID: "a", PageEstimate: 1.5},
		{ID: "b", PageEstimate: 0.5},
		{ID: "c", PageEstimate: 2},
		{ID: "d", PageEstimate: 0},
	}

	total := Estimate(sections)

	// cursor: 1 -> 2.5 (+.5) 3 -> 3.5 (+.5) 4 -> 6 (+.5) 6.5 -> 6.5
	want := []pageRange{{1, 3}, {3, 4}, {4, 6}, {7, 7}}
	if diff := cmp.Diff(want, ranges(sections)); diff != "" {
		t.Fatalf("page ranges mismatch (-want +got):\n%s", diff)
	}
	if total != 7 {
		t.Fatalf("total = %d, want 7", total)
	}
}

func TestEstimate_Monotonic(t *testing.T) {
	estimates := []float64{0.3, 1, 2.7, 0.1, 0.5, 4, 0.25}
	sections := make([]model.GeneratedSection, len(estimates))
	for i, e := range estimates {
		sections[i].PageEstimate = e
	}
	Estimate(sections)

	if sections[0].PageStart != 1 {
		t.Fatalf("first section must start at page 1, got %d", sections[0].PageStart)
	}
	for i, s := range sections {
		if s.PageStart > s.PageEnd {
			t.Fatalf("section %d: start %d > end %d", i, s.PageStart, s.PageEnd)
		}
		if i > 0 && sections[i-1].PageEnd > s.PageStart {
			t.Fatalf("section %d overlaps previous: %d > %d", i, sections[i-1].PageEnd, s.PageStart)
		}
	}
}

func TestEstimate_Empty(t *testing.T) {
	if total := Estimate(nil); total != 1 {
		t.Fatalf("empty document total = %d, want 1", total)
	}
}
