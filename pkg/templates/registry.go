// Package templates provides the read-only template registry and the six
// built-in document templates. The default registry is constructed once per
// process and never mutated.
package templates

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-docgen/pkg/model"
)

// ErrTemplateNotFound is returned for unknown template ids.
var ErrTemplateNotFound = errors.New("templates: template not found")

// Registry is an immutable lookup from template id to definition.
type Registry struct {
	templates map[string]model.TemplateDef
	order     []string
}

// New builds a registry from defs. Empty or duplicate ids and sections without
// a content function are rejected.
func New(defs ...model.TemplateDef) (*Registry, error) {
	r := &Registry{templates: make(map[string]model.TemplateDef, len(defs))}
	for _, def := range defs {
		id := strings.TrimSpace(def.ID)
		if id == "" {
			return nil, errors.New("templates: template id is required")
		}
		if _, exists := r.templates[id]; exists {
			return nil, fmt.Errorf("templates: template %q already registered", id)
		}
		for _, section := range def.Sections {
			if section.Generate == nil {
				return nil, fmt.Errorf("templates: template %q section %q has no content function", id, section.ID)
			}
		}
		r.templates[id] = def
		r.order = append(r.order, id)
	}
	sort.Strings(r.order)
	return r, nil
}

// MustNew panics when New fails. Useful for init-time wiring.
func MustNew(defs ...model.TemplateDef) *Registry {
	r, err := New(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the template with the given id.
func (r *Registry) Get(id string) (model.TemplateDef, error) {
	if r != nil {
		if def, ok := r.templates[id]; ok {
			return def, nil
		}
	}
	return model.TemplateDef{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	if r == nil {
		return false
	}
	_, ok := r.templates[id]
	return ok
}

// List returns every template ordered by id.
func (r *Registry) List() []model.TemplateDef {
	if r == nil {
		return nil
	}
	out := make([]model.TemplateDef, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out
}

// Questions returns the intake questions of template id.
func (r *Registry) Questions(id string) ([]model.IntakeQuestion, error) {
	def, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return append([]model.IntakeQuestion(nil), def.Questions...), nil
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	defs, err := LoadDefinitions(DefinitionsFS())
	if err != nil {
		return nil, err
	}
	sections := builtinSections()

	bound := make([]model.TemplateDef, 0, len(defs))
	for id, def := range defs {
		schemas, ok := sections[id]
		if !ok {
			return nil, fmt.Errorf("templates: no sections bound to template %q", id)
		}
		bound = append(bound, Bind(def, schemas))
	}
	return New(bound...)
})

// Default returns the process-wide registry of built-in templates.
func Default() *Registry {
	r, err := defaultRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

func builtinSections() map[string][]model.SectionSchema {
	return map[string][]model.SectionSchema{
		"dt1": leaseSections(),
		"dt2": msaSections(),
		"dt3": invoiceSections(),
		"dt4": employmentSections(),
		"dt5": vendorSections(),
		"dt6": insuranceSections(),
	}
}
