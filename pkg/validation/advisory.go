package validation

import (
	"strings"

	"github.com/goliatone/go-docgen/pkg/model"
)

// advisoryFunc returns a warning message when the advisory applies.
type advisoryFunc func(model.Answers) (string, bool)

var advisories = map[string]advisoryFunc{
	"dt1": leaseTermAdvisory,
	"dt2": unlimitedLiabilityAdvisory,
	"dt4": nonCompeteAdvisory,
	"dt5": personalDataAdvisory,
	"dt6": coverageLimitAdvisory,
}

// Advisory runs the template-specific advisory for the document's template.
// It reports a warning when triggered and is omitted otherwise.
func Advisory(in Input) (model.ValidationCheck, bool) {
	fn, ok := advisories[in.Template.ID]
	if !ok {
		return model.ValidationCheck{}, false
	}
	message, triggered := fn(in.Answers)
	if !triggered {
		return model.ValidationCheck{}, false
	}
	return model.ValidationCheck{
		ID:          CheckAdvisory,
		Name:        "Template advisory",
		Description: "Recommendations specific to " + in.Template.Name,
		Status:      model.CheckWarning,
		Details:     message,
	}, true
}

func leaseTermAdvisory(a model.Answers) (string, bool) {
	years, ok := parseNumber(a.Lookup("q6", ""))
	if !ok || years < 10 {
		return "", false
	}
	return "Lease term of 10 years or more: consider attaching a subordination, non-disturbance and attornment (SNDA) agreement as an exhibit", true
}

func unlimitedLiabilityAdvisory(a model.Answers) (string, bool) {
	if a.Lookup("q7", "") != "Unlimited" {
		return "", false
	}
	return "Liability is uncapped: confirm both parties accept unlimited exposure", true
}

func nonCompeteAdvisory(a model.Answers) (string, bool) {
	if !strings.EqualFold(a.Lookup("q8", ""), "Yes") || canonicalJurisdiction(a.Lookup("q5", "")) != "California" {
		return "", false
	}
	return "Non-compete covenants are generally unenforceable in California: review the Non-Competition section", true
}

func personalDataAdvisory(a model.Answers) (string, bool) {
	if !strings.EqualFold(a.Lookup("q9", ""), "Yes") {
		return "", false
	}
	return "Vendor processes personal data: request a SOC 2 Type II report and a data processing agreement", true
}

func coverageLimitAdvisory(a model.Answers) (string, bool) {
	limit, ok := parseNumber(a.Lookup("q7", ""))
	if !ok || limit >= 1_000_000 {
		return "", false
	}
	return "General liability limit is below $1,000,000 per occurrence", true
}
