// Package validation runs an ordered battery of consistency checks over a
// generated document and reduces them to an overall status.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-docgen/pkg/model"
)

// Input is everything a check may inspect.
type Input struct {
	Sections []model.GeneratedSection
	Answers  model.Answers
	Template model.TemplateDef
}

// CheckFunc computes one check. Returning false omits the check from the
// result, which is how optional advisories stay silent.
type CheckFunc func(Input) (model.ValidationCheck, bool)

type registeredCheck struct {
	id string
	fn CheckFunc
}

// Engine holds checks in registration order.
type Engine struct {
	checks []registeredCheck
}

// Option configures an Engine.
type Option func(*Engine)

// WithCheck appends a check. Invalid registrations panic.
func WithCheck(id string, fn CheckFunc) Option {
	return func(e *Engine) {
		e.MustRegister(id, fn)
	}
}

// New constructs an empty engine and applies options in order.
func New(options ...Option) *Engine {
	e := &Engine{}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Default returns an engine with the built-in checks: internal references,
// clause numbering, jurisdiction, completeness and template advisories.
func Default() *Engine {
	return New(
		WithCheck(CheckReferences, References),
		WithCheck(CheckNumbering, Numbering),
		WithCheck(CheckJurisdiction, Jurisdiction),
		WithCheck(CheckCompleteness, Completeness),
		WithCheck(CheckAdvisory, Advisory),
	)
}

// Register appends a check; ids must be unique.
func (e *Engine) Register(id string, fn CheckFunc) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("validation: check id is required")
	}
	if fn == nil {
		return fmt.Errorf("validation: check %q has no function", id)
	}
	if e.Has(id) {
		return fmt.Errorf("validation: check %q already registered", id)
	}
	e.checks = append(e.checks, registeredCheck{id: id, fn: fn})
	return nil
}

// MustRegister panics when Register fails.
func (e *Engine) MustRegister(id string, fn CheckFunc) {
	if err := e.Register(id, fn); err != nil {
		panic(err)
	}
}

// Has reports whether a check with id is registered.
func (e *Engine) Has(id string) bool {
	for _, check := range e.checks {
		if check.id == id {
			return true
		}
	}
	return false
}

// List returns registered check ids in run order.
func (e *Engine) List() []string {
	out := make([]string, len(e.checks))
	for i, check := range e.checks {
		out[i] = check.id
	}
	return out
}

// Run executes every check in order. Checks without an explicit id inherit
// their registration id.
func (e *Engine) Run(in Input) model.ValidationResult {
	checks := make([]model.ValidationCheck, 0, len(e.checks))
	for _, registered := range e.checks {
		check, ok := registered.fn(in)
		if !ok {
			continue
		}
		if check.ID == "" {
			check.ID = registered.id
		}
		checks = append(checks, check)
	}
	return model.NewValidationResult(checks)
}
