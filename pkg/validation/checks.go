package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-docgen/components/jurisdictions"
	"github.com/goliatone/go-docgen/pkg/model"
)

// Built-in check ids.
const (
	CheckReferences   = "internal-references"
	CheckNumbering    = "clause-numbering"
	CheckJurisdiction = "jurisdiction"
	CheckCompleteness = "completeness"
	CheckAdvisory     = "template-advisory"
)

// DefaultJurisdiction is named when no answer identifies one.
const DefaultJurisdiction = "the applicable jurisdiction"

var (
	referencePattern = regexp.MustCompile(`\b(?:Section|Article)\s+\d+(?:\.\d+)*`)
	clausePattern    = regexp.MustCompile(`(?m)^\s*\d+\.\d+`)

	jurisdictionQuestionIDs = []string{"state", "jurisdiction", "governingLaw"}
)

// References counts "Section N.N" and "Article N" cross-references. Referents
// are not resolved, so the check always passes and reports the count.
func References(in Input) (model.ValidationCheck, bool) {
	count := 0
	for _, section := range in.Sections {
		count += len(referencePattern.FindAllStringIndex(section.Content, -1))
	}
	return model.ValidationCheck{
		ID:          CheckReferences,
		Name:        "Internal references",
		Description: "Cross-references between sections and articles",
		Status:      model.CheckPass,
		Details:     fmt.Sprintf("%d internal reference(s) found", count),
	}, true
}

// Numbering counts lines that open with an N.N clause number.
func Numbering(in Input) (model.ValidationCheck, bool) {
	count := 0
	for _, section := range in.Sections {
		count += len(clausePattern.FindAllStringIndex(section.Content, -1))
	}
	return model.ValidationCheck{
		ID:          CheckNumbering,
		Name:        "Clause numbering",
		Description: "Numbered clauses across all sections",
		Status:      model.CheckPass,
		Details:     fmt.Sprintf("%d numbered clause(s) across %d section(s)", count, len(in.Sections)),
	}, true
}

// Jurisdiction names the governing jurisdiction: the first answered question of
// type state, then a small list of well-known ids.
func Jurisdiction(in Input) (model.ValidationCheck, bool) {
	name := ResolveJurisdiction(in.Template, in.Answers)
	return model.ValidationCheck{
		ID:          CheckJurisdiction,
		Name:        "Jurisdiction compliance",
		Description: "Governing law is identified",
		Status:      model.CheckPass,
		Details:     "Document reviewed for " + name,
	}, true
}

// ResolveJurisdiction returns the jurisdiction answer used by Jurisdiction.
// US state codes and names are reported by their canonical name.
func ResolveJurisdiction(tpl model.TemplateDef, answers model.Answers) string {
	for _, q := range tpl.Questions {
		if q.Type == model.QuestionState && answers.Answered(q.ID) {
			return canonicalJurisdiction(answers.Lookup(q.ID, ""))
		}
	}
	for _, id := range jurisdictionQuestionIDs {
		if answers.Answered(id) {
			return canonicalJurisdiction(answers.Lookup(id, ""))
		}
	}
	return DefaultJurisdiction
}

func canonicalJurisdiction(value string) string {
	if name, ok := jurisdictions.Normalize(value); ok {
		return name
	}
	return strings.TrimSpace(value)
}

// Completeness passes only when every required question is answered.
func Completeness(in Input) (model.ValidationCheck, bool) {
	required := in.Template.RequiredQuestions()
	answered := 0
	var missing []string
	for _, q := range required {
		if in.Answers.Answered(q.ID) {
			answered++
			continue
		}
		missing = append(missing, q.ID)
	}

	status := model.CheckPass
	details := fmt.Sprintf("%d of %d required fields completed (%d/%d)", answered, len(required), answered, len(required))
	if answered != len(required) {
		status = model.CheckWarning
		details += "; missing: " + strings.Join(missing, ", ")
	}
	return model.ValidationCheck{
		ID:          CheckCompleteness,
		Name:        "Completeness",
		Description: "Required intake questions are answered",
		Status:      status,
		Details:     details,
	}, true
}
