package orchestrator

import (
	"strings"
	"time"

	"github.com/goliatone/go-docgen/pkg/model"
)

// EffectiveDateLayout formats the generation date when a template has no
// answered date question.
const EffectiveDateLayout = "January 2, 2006"

// NormalizeAnswers trims values, drops blank ones and applies declared
// defaults to absent optional questions. Required questions are never
// defaulted so completeness reflects what the user actually answered.
func NormalizeAnswers(tpl model.TemplateDef, answers model.Answers) model.Answers {
	out := make(model.Answers, len(answers))
	for id, value := range answers {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out[id] = trimmed
		}
	}
	for _, q := range tpl.Questions {
		if q.Required || q.Default == "" || out.Answered(q.ID) {
			continue
		}
		out[q.ID] = q.Default
	}
	return out
}

func (r *run) resolveEntities(answers model.Answers, started time.Time) {
	r.doc.Answers = NormalizeAnswers(r.tpl, answers)

	for _, id := range r.tpl.PartyQuestions {
		if r.doc.Answers.Answered(id) {
			r.doc.Parties = append(r.doc.Parties, r.doc.Answers.Lookup(id, ""))
		}
	}
	r.doc.EffectiveDate = started.Format(EffectiveDateLayout)
	if r.tpl.DateQuestion != "" && r.doc.Answers.Answered(r.tpl.DateQuestion) {
		r.doc.EffectiveDate = r.doc.Answers.Lookup(r.tpl.DateQuestion, "")
	}
	r.logger.Debug("entities resolved", "parties", len(r.doc.Parties), "effective_date", r.doc.EffectiveDate)
}
