package pacing

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNone_ReturnsContextError(t *testing.T) {
	if err := None().Wait(context.Background(), StepSection); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := None().Wait(ctx, StepSection); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFixed_Waits(t *testing.T) {
	policy := Fixed{StepSection: 20 * time.Millisecond}

	start := time.Now()
	if err := policy.Wait(context.Background(), StepSection); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected at least 20ms, waited %v", elapsed)
	}

	start = time.Now()
	if err := policy.Wait(context.Background(), StepRendering); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Millisecond {
		t.Fatalf("unconfigured step should not wait, waited %v", elapsed)
	}
}

func TestFixed_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	err := Fixed{StepValidation: time.Minute}.Wait(ctx, StepValidation)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestInteractive_CoversEveryStep(t *testing.T) {
	policy := Interactive()
	for _, step := range []Step{StepEntityResolution, StepStructure, StepSection, StepValidation, StepRendering} {
		if policy[step] <= 0 {
			t.Fatalf("expected delay for %s", step)
		}
	}
}

func TestLimited_BurstDoesNotWait(t *testing.T) {
	policy := NewLimited(1, 3)
	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := policy.Wait(context.Background(), StepSection); err != nil {
			t.Fatalf("wait: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("burst should not wait, took %v", elapsed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := policy.Wait(ctx, StepSection); err == nil {
		t.Fatalf("expected error once burst is exhausted and deadline is short")
	}
}
