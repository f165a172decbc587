package templates

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-docgen/pkg/model"
)

// paragraphs joins blocks with blank lines, the paragraph separator the layout
// engine splits on.
func paragraphs(blocks ...string) string {
	return strings.Join(blocks, "\n\n")
}

// lines joins lines of one paragraph.
func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}

func when(questionID string, values ...string) *model.ConditionalRule {
	return &model.ConditionalRule{QuestionID: questionID, AcceptedValues: values, IncludeWhenMatch: true}
}

func isYes(a model.Answers, id string) bool {
	return strings.EqualFold(a.Lookup(id, ""), "Yes")
}

// splitItems splits a free-form list answer on newlines or semicolons.
func splitItems(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// number parses loosely formatted numeric answers such as "$1,500.00".
func number(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, raw)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
