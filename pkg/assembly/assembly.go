// Package assembly selects the sections a run generates and produces their
// literal text. Both steps are pure: the same template and answers always
// yield the same sections in the same order.
package assembly

import (
	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/visibility"
)

// Option configures an Assembler.
type Option func(*Assembler)

// WithEvaluator overrides the conditional-rule evaluator.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(a *Assembler) {
		if evaluator != nil {
			a.evaluator = evaluator
		}
	}
}

// Assembler filters a template's section schemas by their conditional rules.
type Assembler struct {
	evaluator visibility.Evaluator
}

// New constructs an Assembler using the membership evaluator by default.
func New(options ...Option) *Assembler {
	a := &Assembler{evaluator: visibility.New()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// Assemble returns the active schemas of tpl in template order. Schemas
// without a rule are always active; filtering never reorders.
func (a *Assembler) Assemble(tpl model.TemplateDef, answers model.Answers) []model.SectionSchema {
	active := make([]model.SectionSchema, 0, len(tpl.Sections))
	for _, schema := range tpl.Sections {
		if schema.Condition != nil && !a.evaluator.Include(*schema.Condition, answers) {
			continue
		}
		active = append(active, schema)
	}
	return active
}

// Skeleton converts active schemas into pending sections without content.
func Skeleton(schemas []model.SectionSchema) []model.GeneratedSection {
	sections := make([]model.GeneratedSection, len(schemas))
	for i, schema := range schemas {
		level := schema.Level
		if level < 1 {
			level = 1
		}
		sections[i] = model.GeneratedSection{
			ID:           schema.ID,
			Title:        schema.Title,
			Level:        level,
			PageEstimate: schema.PageEstimate,
			Status:       model.SectionPending,
		}
	}
	return sections
}

// Generate invokes the schema's content function. Trailing whitespace is
// trimmed so text exports stay stable.
func Generate(schema model.SectionSchema, answers model.Answers) string {
	if schema.Generate == nil {
		return ""
	}
	return schema.Generate(answers)
}
