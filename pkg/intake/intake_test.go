package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docgen/pkg/model"
)

type fakeDriver struct {
	inputs    map[string]string
	confirms  map[string]bool
	selects   map[string]int
	textAreas map[string]string
	err       error
	asked     []string
	validated map[string]error
}

func (f *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	f.asked = append(f.asked, cfg.Message)
	if f.err != nil {
		return "", f.err
	}
	value := f.inputs[cfg.Message]
	if cfg.Validator != nil {
		if f.validated == nil {
			f.validated = map[string]error{}
		}
		f.validated[cfg.Message] = cfg.Validator(value)
	}
	return value, nil
}

func (f *fakeDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	f.asked = append(f.asked, cfg.Message)
	return f.confirms[cfg.Message], f.err
}

func (f *fakeDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	f.asked = append(f.asked, cfg.Message)
	return f.selects[cfg.Message], f.err
}

func (f *fakeDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	f.asked = append(f.asked, cfg.Message)
	return f.textAreas[cfg.Message], f.err
}

func (f *fakeDriver) Info(context.Context, string) error { return nil }

func TestCollect_MapsQuestionTypes(t *testing.T) {
	driver := &fakeDriver{
		inputs:    map[string]string{"Company": "  Acme Inc ", "Rate": "8.5"},
		confirms:  map[string]bool{"Late fee?": true, "Guaranty?": false},
		selects:   map[string]int{"Terms": 1, "State": 1},
		textAreas: map[string]string{"Items": "a\nb"},
	}
	questions := []model.IntakeQuestion{
		{ID: "q1", Prompt: "Company", Type: model.QuestionText, Required: true},
		{ID: "q2", Prompt: "Rate", Type: model.QuestionNumber},
		{ID: "q3", Prompt: "Late fee?", Type: model.QuestionYesNo},
		{ID: "q4", Prompt: "Guaranty?", Type: model.QuestionYesNo},
		{ID: "q5", Prompt: "Terms", Type: model.QuestionSelect, Options: []string{"Net 15", "Net 30"}},
		{ID: "q6", Prompt: "Items", Type: model.QuestionTextArea},
		{ID: "q7", Prompt: "Skipped", Type: model.QuestionText},
		{ID: "q8", Prompt: "State", Type: model.QuestionState},
	}

	got, err := New(WithDriver(driver)).Collect(context.Background(), questions, model.Answers{"q7": "seeded"})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := model.Answers{
		"q1": "Acme Inc",
		"q2": "8.5",
		"q3": "Yes",
		"q4": "No",
		"q5": "Net 30",
		"q6": "a\nb",
		"q7": "seeded",
		"q8": "Alaska",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
	for _, asked := range driver.asked {
		if asked == "Skipped" {
			t.Fatalf("seeded question should not be asked")
		}
	}
	for msg, err := range driver.validated {
		if err != nil {
			t.Fatalf("validator for %q rejected a valid answer: %v", msg, err)
		}
	}
}

func TestCollect_PropagatesAbort(t *testing.T) {
	driver := &fakeDriver{err: ErrAborted}
	_, err := New(WithDriver(driver)).Collect(context.Background(), []model.IntakeQuestion{{ID: "q1"}}, nil)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestValidatorFor(t *testing.T) {
	required := validatorFor(model.IntakeQuestion{Required: true})
	if err := required("  "); !errors.Is(err, ErrRequired) {
		t.Fatalf("expected ErrRequired, got %v", err)
	}
	currency := validatorFor(model.IntakeQuestion{Type: model.QuestionCurrency})
	if err := currency("$12,500.00"); err != nil {
		t.Fatalf("currency should accept formatted amounts: %v", err)
	}
	if err := currency("lots"); err == nil {
		t.Fatalf("expected non-numeric error")
	}
	if validatorFor(model.IntakeQuestion{}) != nil {
		t.Fatalf("optional text questions need no validator")
	}
}
