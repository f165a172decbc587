package templates

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docgen/pkg/model"
	"github.com/goliatone/go-docgen/pkg/testsupport"
)

func TestDefault_ListsBuiltinTemplates(t *testing.T) {
	reg := Default()

	var ids []string
	for _, tpl := range reg.List() {
		ids = append(ids, tpl.ID)
	}
	want := []string{"dt1", "dt2", "dt3", "dt4", "dt5", "dt6"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("template ids mismatch (-want +got):\n%s", diff)
	}

	if Default() != reg {
		t.Fatalf("expected Default to return the same registry instance")
	}
}

func TestDefault_TemplatesAreWellFormed(t *testing.T) {
	for _, tpl := range Default().List() {
		t.Run(tpl.ID, func(t *testing.T) {
			if tpl.Name == "" || tpl.Category == "" {
				t.Fatalf("template %s missing name or category", tpl.ID)
			}
			if len(tpl.Sections) == 0 {
				t.Fatalf("template %s has no sections", tpl.ID)
			}

			questions := make(map[string]model.IntakeQuestion, len(tpl.Questions))
			for _, q := range tpl.Questions {
				questions[q.ID] = q
			}
			for _, id := range tpl.PartyQuestions {
				if _, ok := questions[id]; !ok {
					t.Fatalf("party question %q not declared", id)
				}
			}
			if tpl.DateQuestion != "" {
				if _, ok := questions[tpl.DateQuestion]; !ok {
					t.Fatalf("date question %q not declared", tpl.DateQuestion)
				}
			}

			seen := map[string]bool{}
			for _, section := range tpl.Sections {
				if seen[section.ID] {
					t.Fatalf("duplicate section id %q", section.ID)
				}
				seen[section.ID] = true
				if section.PageEstimate <= 0 {
					t.Fatalf("section %s has non-positive estimate", section.ID)
				}
				if section.Condition != nil {
					if _, ok := questions[section.Condition.QuestionID]; !ok {
						t.Fatalf("section %s conditions on unknown question %q", section.ID, section.Condition.QuestionID)
					}
				}
				// Content functions must tolerate an empty answer set.
				if got := section.Generate(model.Answers{}); strings.TrimSpace(got) == "" {
					t.Fatalf("section %s produced empty content for empty answers", section.ID)
				}
			}
		})
	}
}

func TestRegistry_GetUnknownTemplate(t *testing.T) {
	_, err := Default().Get("dt99")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if Default().Has("dt99") {
		t.Fatalf("expected Has to report false for unknown id")
	}
}

func TestRegistry_Questions(t *testing.T) {
	questions, err := Default().Questions("dt3")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions) != 8 {
		t.Fatalf("expected 8 invoice questions, got %d", len(questions))
	}
	for _, q := range questions {
		if !q.Required {
			t.Fatalf("invoice question %s should be required", q.ID)
		}
	}
}

func TestNew_RejectsInvalidDefinitions(t *testing.T) {
	cases := []struct {
		name string
		defs []model.TemplateDef
	}{
		{name: "empty id", defs: []model.TemplateDef{{ID: " "}}},
		{name: "duplicate", defs: []model.TemplateDef{{ID: "a"}, {ID: "a"}}},
		{name: "nil generate", defs: []model.TemplateDef{{ID: "a", Sections: []model.SectionSchema{{ID: "s1"}}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.defs...); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestInvoice_ContentCarriesAnswers(t *testing.T) {
	tpl, err := Default().Get("dt3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	answers := testsupport.InvoiceAnswers()

	content := map[string]string{}
	for _, section := range tpl.Sections {
		content[section.ID] = section.Generate(answers)
	}

	checks := map[string]string{
		"inv-1": "Invoice Number: INV-2026-0007",
		"inv-2": "1. Consulting — 10 hrs",
		"inv-3": "Tax Rate: 8.5%",
		"inv-4": "Late Fee:",
	}
	for id, want := range checks {
		if !strings.Contains(content[id], want) {
			t.Fatalf("section %s missing %q:\n%s", id, want, content[id])
		}
	}

	answers["q8"] = "No"
	if strings.Contains(tpl.Sections[3].Generate(answers), "Late Fee:") {
		t.Fatalf("late fee should be omitted when declined")
	}
}

func TestContent_UsesPlaceholdersForMissingAnswers(t *testing.T) {
	tpl, err := Default().Get("dt3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got := tpl.Sections[0].Generate(nil)
	if !strings.Contains(got, "Invoice Number: [Invoice Number]") {
		t.Fatalf("expected placeholder, got:\n%s", got)
	}
}

func TestLoadDefinitions(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("id: a\nname: A\nquestions:\n  - id: q1\n    prompt: First\n")},
		"b.json": {Data: []byte(`{"id":"b","name":"B","questions":[{"id":"q1","type":"yesno","required":true}]}`)},
		"c.txt":  {Data: []byte("ignored")},
	}
	defs, err := LoadDefinitions(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if got := defs["a"].Questions[0].Type; got != model.QuestionText {
		t.Fatalf("expected default question type text, got %q", got)
	}
	if got := defs["b"].Questions[0].Type; got != model.QuestionYesNo {
		t.Fatalf("expected yesno, got %q", got)
	}
}

func TestLoadDefinitions_Errors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"empty file":         {"a.yaml": {Data: []byte("  \n")}},
		"missing id":         {"a.yaml": {Data: []byte("name: A\n")}},
		"duplicate template": {"a.yaml": {Data: []byte("id: x\n")}, "b.yaml": {Data: []byte("id: x\n")}},
		"duplicate question": {"a.yaml": {Data: []byte("id: x\nquestions:\n  - id: q1\n  - id: q1\n")}},
		"blank question id":  {"a.yaml": {Data: []byte("id: x\nquestions:\n  - prompt: p\n")}},
	}
	for name, fsys := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadDefinitions(fsys); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestConditionalSections(t *testing.T) {
	cases := []struct {
		template string
		section  string
		question string
	}{
		{"dt1", "cl-7", "q10"},
		{"dt1", "cl-8", "q11"},
		{"dt2", "msa-7", "q8"},
		{"dt2", "msa-10", "q10"},
		{"dt4", "emp-6", "q8"},
		{"dt5", "vp-5", "q9"},
		{"dt6", "ins-3", "q8"},
		{"dt6", "ins-4", "q10"},
	}
	for _, tc := range cases {
		tpl, err := Default().Get(tc.template)
		if err != nil {
			t.Fatalf("get %s: %v", tc.template, err)
		}
		var found *model.SectionSchema
		for i := range tpl.Sections {
			if tpl.Sections[i].ID == tc.section {
				found = &tpl.Sections[i]
			}
		}
		if found == nil || found.Condition == nil {
			t.Fatalf("%s/%s: expected conditional section", tc.template, tc.section)
		}
		want := &model.ConditionalRule{QuestionID: tc.question, AcceptedValues: []string{"Yes"}, IncludeWhenMatch: true}
		if diff := cmp.Diff(want, found.Condition); diff != "" {
			t.Fatalf("%s/%s condition mismatch (-want +got):\n%s", tc.template, tc.section, diff)
		}
	}
}
