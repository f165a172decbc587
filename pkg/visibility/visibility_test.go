package visibility

import (
	"testing"

	"github.com/goliatone/go-docgen/pkg/model"
)

func TestMembership_Include(t *testing.T) {
	rule := model.ConditionalRule{QuestionID: "q9", AcceptedValues: []string{"Yes"}, IncludeWhenMatch: true}
	exclude := model.ConditionalRule{QuestionID: "q9", AcceptedValues: []string{"Yes"}, IncludeWhenMatch: false}

	cases := []struct {
		name    string
		rule    model.ConditionalRule
		answers model.Answers
		want    bool
	}{
		{name: "match includes", rule: rule, answers: model.Answers{"q9": "Yes"}, want: true},
		{name: "mismatch excludes", rule: rule, answers: model.Answers{"q9": "No"}, want: false},
		{name: "absent excludes", rule: rule, answers: model.Answers{}, want: false},
		{name: "nil answers excludes", rule: rule, answers: nil, want: false},
		{name: "case sensitive", rule: rule, answers: model.Answers{"q9": "yes"}, want: false},
		{name: "inverted match excludes", rule: exclude, answers: model.Answers{"q9": "Yes"}, want: false},
		{name: "inverted absent includes", rule: exclude, answers: model.Answers{}, want: true},
	}

	evaluator := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evaluator.Include(tc.rule, tc.answers); got != tc.want {
				t.Fatalf("Include() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEvaluatorFunc(t *testing.T) {
	called := false
	fn := EvaluatorFunc(func(model.ConditionalRule, model.Answers) bool {
		called = true
		return true
	})
	if !fn.Include(model.ConditionalRule{}, nil) || !called {
		t.Fatalf("expected func evaluator to be invoked")
	}
}
