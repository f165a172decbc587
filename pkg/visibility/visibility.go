// Package visibility decides which conditional sections take part in a run.
package visibility

import "github.com/goliatone/go-docgen/pkg/model"

// Evaluator determines whether a section guarded by rule should be included
// for the given answers.
type Evaluator interface {
	Include(rule model.ConditionalRule, answers model.Answers) bool
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(rule model.ConditionalRule, answers model.Answers) bool

// Include delegates to the underlying function.
func (fn EvaluatorFunc) Include(rule model.ConditionalRule, answers model.Answers) bool {
	return fn(rule, answers)
}

// Membership is the default evaluator. It looks up answers[rule.QuestionID]
// (empty when absent), tests exact membership in rule.AcceptedValues and
// includes the section iff membership equals rule.IncludeWhenMatch.
type Membership struct{}

// New returns the default membership evaluator.
func New() Membership { return Membership{} }

// Include implements Evaluator.
func (Membership) Include(rule model.ConditionalRule, answers model.Answers) bool {
	value := ""
	if answers != nil {
		value = answers[rule.QuestionID]
	}
	return Matches(rule, value) == rule.IncludeWhenMatch
}

// Matches reports whether value is one of the rule's accepted values.
func Matches(rule model.ConditionalRule, value string) bool {
	for _, accepted := range rule.AcceptedValues {
		if accepted == value {
			return true
		}
	}
	return false
}
