package model

import "time"

// SectionStatus tracks a section through the content stage.
type SectionStatus string

const (
	SectionPending    SectionStatus = "pending"
	SectionGenerating SectionStatus = "generating"
	SectionDone       SectionStatus = "done"
)

// GeneratedSection is the realised output of one SectionSchema for one run.
// PageStart and PageEnd are planning estimates, not rendered page numbers.
type GeneratedSection struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Level        int           `json:"level"`
	Content      string        `json:"content"`
	PageEstimate float64       `json:"pageEstimate"`
	PageStart    int           `json:"pageStart"`
	PageEnd      int           `json:"pageEnd"`
	Status       SectionStatus `json:"status"`
	GeneratedAt  time.Time     `json:"generatedAt"`
}

// GeneratedDocument is the terminal artifact of one pipeline run.
type GeneratedDocument struct {
	ID            string             `json:"id"`
	TemplateID    string             `json:"templateId"`
	TemplateName  string             `json:"templateName"`
	Category      string             `json:"category"`
	Answers       Answers            `json:"answers"`
	Parties       []string           `json:"parties,omitempty"`
	EffectiveDate string             `json:"effectiveDate,omitempty"`
	Sections      []GeneratedSection `json:"sections"`
	TotalPages    int                `json:"totalPages"`
	StartedAt     time.Time          `json:"startedAt"`
	GeneratedAt   time.Time          `json:"generatedAt"`
	Duration      time.Duration      `json:"duration"`
	Validation    ValidationResult   `json:"validation"`
}
