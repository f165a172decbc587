// Package pacing inserts optional delays between pipeline steps so interactive
// callers can watch progress. Pacing never affects the generated document.
package pacing

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Step names a point in the pipeline where a policy may wait.
type Step string

const (
	StepEntityResolution Step = "entity-resolution"
	StepStructure        Step = "structure"
	StepSection          Step = "section"
	StepValidation       Step = "validation"
	StepRendering        Step = "rendering"
)

// Policy decides how long to pause before a step. Wait must return promptly
// with ctx.Err() once ctx is done.
type Policy interface {
	Wait(ctx context.Context, step Step) error
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(ctx context.Context, step Step) error

// Wait implements Policy.
func (f PolicyFunc) Wait(ctx context.Context, step Step) error {
	return f(ctx, step)
}

type none struct{}

// None returns a policy that never waits.
func None() Policy {
	return none{}
}

func (none) Wait(ctx context.Context, _ Step) error {
	return ctx.Err()
}

// Fixed waits a per-step duration. Steps absent from the map do not wait.
type Fixed map[Step]time.Duration

// Interactive returns the delays used for visible progress in terminals and
// streaming clients.
func Interactive() Fixed {
	return Fixed{
		StepEntityResolution: 400 * time.Millisecond,
		StepStructure:        300 * time.Millisecond,
		StepSection:          150 * time.Millisecond,
		StepValidation:       300 * time.Millisecond,
		StepRendering:        400 * time.Millisecond,
	}
}

// Wait implements Policy.
func (f Fixed) Wait(ctx context.Context, step Step) error {
	delay := f[step]
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Limited spaces steps with a token bucket, regardless of step kind.
type Limited struct {
	limiter *rate.Limiter
}

// NewLimited allows perSecond steps per second with the given burst.
func NewLimited(perSecond float64, burst int) *Limited {
	if burst < 1 {
		burst = 1
	}
	return &Limited{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait implements Policy.
func (l *Limited) Wait(ctx context.Context, _ Step) error {
	return l.limiter.Wait(ctx)
}

var (
	_ Policy = none{}
	_ Policy = Fixed(nil)
	_ Policy = (*Limited)(nil)
	_ Policy = PolicyFunc(nil)
)
