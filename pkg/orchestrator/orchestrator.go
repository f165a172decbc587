package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-docgen/pkg/assembly"
	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/pacing"
	"github.com/goliatone/go-docgen/pkg/templates"
	"github.com/goliatone/go-docgen/pkg/validation"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects the template registry. Defaults to templates.Default().
func WithRegistry(registry *templates.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithValidator injects the validation engine. Defaults to validation.Default().
func WithValidator(engine *validation.Engine) Option {
	return func(o *Orchestrator) {
		o.validator = engine
	}
}

// WithAssembler injects the section assembler.
func WithAssembler(assembler *assembly.Assembler) Option {
	return func(o *Orchestrator) {
		o.assembler = assembler
	}
}

// WithPacing sets the delay policy between steps. Defaults to pacing.None().
func WithPacing(policy pacing.Policy) Option {
	return func(o *Orchestrator) {
		o.pacing = policy
	}
}

// WithClock overrides time.Now, mainly for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithIDGenerator overrides the document id generator (UUIDv4 by default).
func WithIDGenerator(fn func() string) Option {
	return func(o *Orchestrator) {
		o.newID = fn
	}
}

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator sequences the pipeline stages. It holds no per-run state and is
// safe for concurrent use.
type Orchestrator struct {
	registry  *templates.Registry
	validator *validation.Engine
	assembler *assembly.Assembler
	pacing    pacing.Policy
	now       func() time.Time
	newID     func() string
	logger    *slog.Logger
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies fall back to the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = templates.Default()
	}
	if o.validator == nil {
		o.validator = validation.Default()
	}
	if o.assembler == nil {
		o.assembler = assembly.New()
	}
	if o.pacing == nil {
		o.pacing = pacing.None()
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.newID == nil {
		o.newID = uuid.NewString
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	o.logger = o.logger.With("component", "orchestrator")
}

// Registry exposes the template registry the orchestrator resolves against.
func (o *Orchestrator) Registry() *templates.Registry {
	return o.registry
}

// Request describes one generation run.
type Request struct {
	TemplateID string
	Answers    model.Answers

	// Progress receives snapshots in order. The orchestrator never closes it;
	// sends block until the consumer reads or ctx is done. Optional.
	Progress chan<- model.Progress
}

// Run executes every stage and returns the finished document. An unknown
// template is the only input error and is reported before any stage runs;
// otherwise Run fails only when ctx is cancelled.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*model.GeneratedDocument, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	tpl, err := o.registry.Get(req.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve template: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := &run{
		o:        o,
		tpl:      tpl,
		progress: newTracker(o.now),
		out:      req.Progress,
		logger:   o.logger.With("template", tpl.ID),
	}
	doc, err := r.execute(ctx, req.Answers)
	if err != nil {
		return nil, err
	}

	o.logger.Info("document generated",
		"template", doc.TemplateID,
		"document", doc.ID,
		"sections", len(doc.Sections),
		"pages", doc.TotalPages,
		"status", doc.Validation.OverallStatus,
		"duration", doc.Duration,
	)
	return doc, nil
}
