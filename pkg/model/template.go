package model

// ContentFunc renders the literal text of one section. Implementations must be
// pure and total: every answer is read with a fallback so a missing key yields
// a visible placeholder instead of a failure.
type ContentFunc func(Answers) string

// ConditionalRule decides whether a section is part of a run. The section is
// included when membership of answers[QuestionID] in AcceptedValues equals
// IncludeWhenMatch.
type ConditionalRule struct {
	QuestionID       string   `json:"questionId" yaml:"questionId"`
	AcceptedValues   []string `json:"acceptedValues" yaml:"acceptedValues"`
	IncludeWhenMatch bool     `json:"includeWhenMatch" yaml:"includeWhenMatch"`
}

// SectionSchema is the static definition of one article of a template.
type SectionSchema struct {
	ID           string
	Title        string
	Level        int
	Generate     ContentFunc
	PageEstimate float64
	Condition    *ConditionalRule
}

// QuestionType hints how an intake question should be collected.
type QuestionType string

const (
	QuestionText     QuestionType = "text"
	QuestionTextArea QuestionType = "textarea"
	QuestionNumber   QuestionType = "number"
	QuestionCurrency QuestionType = "currency"
	QuestionDate     QuestionType = "date"
	QuestionSelect   QuestionType = "select"
	QuestionYesNo    QuestionType = "yesno"
	QuestionState    QuestionType = "state"
)

// IntakeQuestion describes one answer the intake form collects.
type IntakeQuestion struct {
	ID       string       `json:"id" yaml:"id"`
	Prompt   string       `json:"prompt" yaml:"prompt"`
	Help     string       `json:"help,omitempty" yaml:"help"`
	Type     QuestionType `json:"type" yaml:"type"`
	Options  []string     `json:"options,omitempty" yaml:"options"`
	Required bool         `json:"required" yaml:"required"`
	Default  string       `json:"default,omitempty" yaml:"default"`
}

// TemplateDef is an immutable document template. PartyQuestions and
// DateQuestion name the answers the title page resolves its entities from.
type TemplateDef struct {
	ID             string
	Name           string
	Category       string
	Description    string
	PartyQuestions []string
	DateQuestion   string
	Sections       []SectionSchema
	Questions      []IntakeQuestion
}

// RequiredQuestions returns the required questions in declaration order.
func (t TemplateDef) RequiredQuestions() []IntakeQuestion {
	out := make([]IntakeQuestion, 0, len(t.Questions))
	for _, q := range t.Questions {
		if q.Required {
			out = append(out, q)
		}
	}
	return out
}
