package model

import "time"

// Stage names one step of the generation pipeline, in execution order.
type Stage string

const (
	StageEntityResolution Stage = "entity-resolution"
	StageStructure        Stage = "structure"
	StageContent          Stage = "content"
	StageValidation       Stage = "validation"
	StageRendering        Stage = "rendering"
)

// Stages lists every stage in the order the orchestrator runs them.
func Stages() []Stage {
	return []Stage{
		StageEntityResolution,
		StageStructure,
		StageContent,
		StageValidation,
		StageRendering,
	}
}

// ProgressEvent distinguishes the snapshots emitted within a stage.
type ProgressEvent string

const (
	ProgressStarted   ProgressEvent = "started"
	ProgressSection   ProgressEvent = "section"
	ProgressCompleted ProgressEvent = "completed"
)

// Progress is an ephemeral snapshot of a run. It is delivered once and never
// stored.
type Progress struct {
	Stage             Stage         `json:"stage"`
	Event             ProgressEvent `json:"event"`
	StagePercent      float64       `json:"stagePercent"`
	OverallPercent    float64       `json:"overallPercent"`
	SectionsCompleted int           `json:"sectionsCompleted"`
	SectionsTotal     int           `json:"sectionsTotal"`
	PagesGenerated    int           `json:"pagesGenerated"`
	ETA               time.Duration `json:"eta"`
	Message           string        `json:"message,omitempty"`
}
