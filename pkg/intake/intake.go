// Package intake collects template answers interactively, one prompt per
// intake question.
package intake

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-docgen/components/jurisdictions"
	"github.com/goliatone/go-docgen/pkg/model"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("intake: aborted")
	// ErrRequired is reported by the validator of required questions.
	ErrRequired = errors.New("intake: an answer is required")
)

// Collector asks questions through a PromptDriver.
type Collector struct {
	driver PromptDriver
}

// Option configures a Collector.
type Option func(*Collector)

// WithDriver swaps the prompt driver (survey on the process terminal by default).
func WithDriver(driver PromptDriver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// New constructs a Collector.
func New(options ...Option) *Collector {
	c := &Collector{}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	if c.driver == nil {
		c.driver = NewSurveyDriver()
	}
	return c
}

// Collect asks every question in order. Questions already answered in seed
// are skipped; the returned map contains seed plus the collected answers.
// Yes/no questions are stored as "Yes" or "No".
func (c *Collector) Collect(ctx context.Context, questions []model.IntakeQuestion, seed model.Answers) (model.Answers, error) {
	answers := seed.Clone()
	for _, q := range questions {
		if answers.Answered(q.ID) {
			continue
		}
		value, err := c.ask(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("intake: question %s: %w", q.ID, err)
		}
		if value = strings.TrimSpace(value); value != "" {
			answers[q.ID] = value
		}
	}
	return answers, nil
}

func (c *Collector) ask(ctx context.Context, q model.IntakeQuestion) (string, error) {
	message := q.Prompt
	if message == "" {
		message = q.ID
	}

	switch q.Type {
	case model.QuestionYesNo:
		ok, err := c.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Help:    q.Help,
			Default: strings.EqualFold(q.Default, "Yes"),
		})
		if err != nil {
			return "", err
		}
		if ok {
			return "Yes", nil
		}
		return "No", nil

	case model.QuestionSelect:
		if len(q.Options) == 0 {
			break
		}
		idx, err := c.driver.Select(ctx, SelectConfig{
			Message:      message,
			Help:         q.Help,
			Options:      q.Options,
			DefaultIndex: indexOf(q.Options, q.Default),
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(q.Options) {
			return "", nil
		}
		return q.Options[idx], nil

	case model.QuestionState:
		names, err := jurisdictions.Names()
		if err != nil || len(names) == 0 {
			break
		}
		def := q.Default
		if name, ok := jurisdictions.Normalize(def); ok {
			def = name
		}
		idx, err := c.driver.Select(ctx, SelectConfig{
			Message:      message,
			Help:         q.Help,
			Options:      names,
			DefaultIndex: indexOf(names, def),
			PageSize:     10,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(names) {
			return "", nil
		}
		return names[idx], nil

	case model.QuestionTextArea:
		return c.driver.TextArea(ctx, TextAreaConfig{
			Message:   message,
			Help:      q.Help,
			Default:   q.Default,
			Validator: validatorFor(q),
		})
	}

	return c.driver.Input(ctx, InputConfig{
		Message:   message,
		Help:      q.Help,
		Default:   q.Default,
		Validator: validatorFor(q),
	})
}

// validatorFor requires a value for required questions and a number for
// numeric ones. Currency symbols and separators are tolerated.
func validatorFor(q model.IntakeQuestion) func(string) error {
	numeric := q.Type == model.QuestionNumber || q.Type == model.QuestionCurrency
	if !q.Required && !numeric {
		return nil
	}
	return func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			if q.Required {
				return ErrRequired
			}
			return nil
		}
		if numeric {
			cleaned := strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "").Replace(value)
			if _, err := strconv.ParseFloat(cleaned, 64); err != nil {
				return fmt.Errorf("intake: %q is not a number", value)
			}
		}
		return nil
	}
}
