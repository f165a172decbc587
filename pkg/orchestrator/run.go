package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-docgen/pkg/assembly"
	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/pacing"
	"github.com/goliatone/go-docgen/pkg/pagination"
	"github.com/goliatone/go-docgen/pkg/validation"
)

// run carries the state of one pipeline execution.
type run struct {
	o        *Orchestrator
	tpl      model.TemplateDef
	progress *tracker
	out      chan<- model.Progress
	logger   *slog.Logger

	doc     *model.GeneratedDocument
	schemas []model.SectionSchema
}

func (r *run) execute(ctx context.Context, answers model.Answers) (*model.GeneratedDocument, error) {
	started := r.o.now()
	r.doc = &model.GeneratedDocument{
		ID:           r.o.newID(),
		TemplateID:   r.tpl.ID,
		TemplateName: r.tpl.Name,
		Category:     r.tpl.Category,
		StartedAt:    started,
	}

	stages := []struct {
		stage model.Stage
		step  pacing.Step
		fn    func(context.Context) error
	}{
		{model.StageEntityResolution, pacing.StepEntityResolution, func(context.Context) error {
			r.resolveEntities(answers, started)
			return nil
		}},
		{model.StageStructure, pacing.StepStructure, func(context.Context) error {
			r.structure()
			return nil
		}},
		{model.StageContent, "", r.content},
		{model.StageValidation, pacing.StepValidation, func(context.Context) error {
			r.validate()
			return nil
		}},
		{model.StageRendering, pacing.StepRendering, func(context.Context) error {
			r.finalize()
			return nil
		}},
	}

	for _, s := range stages {
		if err := r.begin(ctx, s.stage); err != nil {
			return nil, err
		}
		if s.step != "" {
			if err := r.o.pacing.Wait(ctx, s.step); err != nil {
				return nil, fmt.Errorf("orchestrator: %s: %w", s.stage, err)
			}
		}
		if err := s.fn(ctx); err != nil {
			return nil, err
		}
		if err := r.complete(ctx, s.stage); err != nil {
			return nil, err
		}
	}
	return r.doc, nil
}

func (r *run) begin(ctx context.Context, stage model.Stage) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("orchestrator: %s: %w", stage, err)
	}
	r.logger.Debug("stage started", "stage", stage)
	return r.emit(ctx, r.progress.start(stage, r.sectionsDone(), len(r.doc.Sections), r.pagesDone()))
}

func (r *run) complete(ctx context.Context, stage model.Stage) error {
	r.logger.Debug("stage completed", "stage", stage)
	return r.emit(ctx, r.progress.finish(stage, r.sectionsDone(), len(r.doc.Sections), r.pagesDone()))
}

func (r *run) emit(ctx context.Context, p model.Progress) error {
	if r.out == nil {
		return nil
	}
	select {
	case r.out <- p:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("orchestrator: %s: %w", p.Stage, ctx.Err())
	}
}

func (r *run) structure() {
	r.schemas = r.o.assembler.Assemble(r.tpl, r.doc.Answers)
	r.doc.Sections = assembly.Skeleton(r.schemas)
	r.doc.TotalPages = pagination.Estimate(r.doc.Sections)
	r.logger.Debug("structure planned", "sections", len(r.doc.Sections), "pages", r.doc.TotalPages)
}

func (r *run) content(ctx context.Context) error {
	total := len(r.doc.Sections)
	for i := range r.doc.Sections {
		section := &r.doc.Sections[i]
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("orchestrator: %s: section %s: %w", model.StageContent, section.ID, err)
		}
		section.Status = model.SectionGenerating
		if err := r.o.pacing.Wait(ctx, pacing.StepSection); err != nil {
			return fmt.Errorf("orchestrator: %s: section %s: %w", model.StageContent, section.ID, err)
		}
		section.Content = assembly.Generate(r.schemas[i], r.doc.Answers)
		section.GeneratedAt = r.o.now()
		section.Status = model.SectionDone

		event := r.progress.section(i+1, total, section.PageEnd, section.Title)
		if err := r.emit(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) validate() {
	r.doc.Validation = r.o.validator.Run(validation.Input{
		Sections: r.doc.Sections,
		Answers:  r.doc.Answers,
		Template: r.tpl,
	})
}

func (r *run) finalize() {
	if r.doc.TotalPages < 1 {
		r.doc.TotalPages = 1
	}
	r.doc.GeneratedAt = r.o.now()
	r.doc.Duration = r.doc.GeneratedAt.Sub(r.doc.StartedAt)
}

func (r *run) sectionsDone() int {
	done := 0
	for _, section := range r.doc.Sections {
		if section.Status == model.SectionDone {
			done++
		}
	}
	return done
}

func (r *run) pagesDone() int {
	pages := 0
	for _, section := range r.doc.Sections {
		if section.Status == model.SectionDone {
			pages = section.PageEnd
		}
	}
	return pages
}
