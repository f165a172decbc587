package jurisdictions

import (
	"sort"
	"strings"
)

// Search filters list by case-insensitive substring of the name or an exact
// code. Exact code matches rank first, then name prefixes, then the rest.
func Search(list []Jurisdiction, query string, limit int, opts Options) []Jurisdiction {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(list) <= limit {
				return append([]Jurisdiction{}, list...)
			}
			return append([]Jurisdiction{}, list[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]match, 0, 8)
	for _, j := range list {
		lowerName := strings.ToLower(j.Name)
		rank := -1
		switch {
		case strings.EqualFold(j.Code, q):
			rank = 0
		case strings.HasPrefix(lowerName, q):
			rank = 1
		case strings.Contains(lowerName, q):
			rank = 2
		}
		if rank < 0 {
			continue
		}
		matches = append(matches, match{jurisdiction: j, rank: rank})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].jurisdiction.Name < matches[j].jurisdiction.Name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Jurisdiction, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.jurisdiction)
	}
	return out
}

// SearchOptions is Search shaped as form options.
func SearchOptions(list []Jurisdiction, query string, limit int, opts Options) []Option {
	results := Search(list, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, j := range results {
		out = append(out, Option{Value: j.Name, Label: j.Name + " (" + j.Code + ")"})
	}
	return out
}

// Option is a value/label pair for select inputs.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type match struct {
	jurisdiction Jurisdiction
	rank         int
}
