package orchestrator

import (
	"time"

	"github.com/goliatone/go-docgen/pkg/model"
)

// stageWeights splits overall progress across stages; they sum to 100.
var stageWeights = map[model.Stage]float64{
	model.StageEntityResolution: 5,
	model.StageStructure:        10,
	model.StageContent:          60,
	model.StageValidation:       15,
	model.StageRendering:        10,
}

// tracker turns stage transitions into Progress snapshots.
type tracker struct {
	now     func() time.Time
	started time.Time
	done    float64
}

func newTracker(now func() time.Time) *tracker {
	return &tracker{now: now, started: now()}
}

func (t *tracker) start(stage model.Stage, completed, total, pages int) model.Progress {
	return t.snapshot(stage, model.ProgressStarted, 0, completed, total, pages, string(stage)+" started")
}

func (t *tracker) finish(stage model.Stage, completed, total, pages int) model.Progress {
	p := t.snapshot(stage, model.ProgressCompleted, 100, completed, total, pages, string(stage)+" completed")
	t.done += stageWeights[stage]
	return p
}

func (t *tracker) section(completed, total, pages int, title string) model.Progress {
	percent := 100.0
	if total > 0 {
		percent = float64(completed) / float64(total) * 100
	}
	return t.snapshot(model.StageContent, model.ProgressSection, percent, completed, total, pages, title)
}

func (t *tracker) snapshot(stage model.Stage, event model.ProgressEvent, stagePercent float64, completed, total, pages int, message string) model.Progress {
	overall := t.done + stageWeights[stage]*stagePercent/100
	if overall > 100 {
		overall = 100
	}
	return model.Progress{
		Stage:             stage,
		Event:             event,
		StagePercent:      stagePercent,
		OverallPercent:    overall,
		SectionsCompleted: completed,
		SectionsTotal:     total,
		PagesGenerated:    pages,
		ETA:               t.eta(overall),
		Message:           message,
	}
}

// eta extrapolates linearly from elapsed time.
func (t *tracker) eta(overall float64) time.Duration {
	if overall <= 0 || overall >= 100 {
		return 0
	}
	elapsed := t.now().Sub(t.started)
	return time.Duration(float64(elapsed) * (100 - overall) / overall)
}
