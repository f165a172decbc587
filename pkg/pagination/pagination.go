// Package pagination assigns planning page ranges to assembled sections from
// the author-supplied per-section estimates. The numbers are never reconciled
// with the pages the layout engine actually produces.
package pagination

import (
	"math"

	"github.com/goliatone/go-docgen/pkg/model"
)

// SectionGap is the fraction of a page reserved between consecutive sections.
const SectionGap = 0.5

// Estimate walks sections in order with a fractional cursor starting at 1 and
// sets PageStart/PageEnd on each. It returns ceil(final cursor) as the
// document's total page count.
func Estimate(sections []model.GeneratedSection) int {
	cursor := 1.0
	for i := range sections {
		estimate := sections[i].PageEstimate
		if estimate < 0 {
			estimate = 0
		}
		sections[i].PageStart = int(math.Ceil(cursor))
		cursor += estimate
		sections[i].PageEnd = int(math.Ceil(cursor))
		if i < len(sections)-1 {
			cursor += SectionGap
		}
	}
	return int(math.Ceil(cursor))
}
