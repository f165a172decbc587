package templates

import (
	"github.com/goliatone/go-docgen/pkg/model"
)

func insuranceSections() []model.SectionSchema {
	return []model.SectionSchema{
		{ID: "ins-1", Title: "Certificate Information", Level: 1, PageEstimate: 0.5, Generate: insInfo},
		{ID: "ins-2", Title: "Coverage Summary", Level: 1, PageEstimate: 0.75, Generate: insCoverage},
		{ID: "ins-3", Title: "Additional Insured Endorsement", Level: 2, PageEstimate: 0.5, Generate: insAdditional, Condition: when("q8", "Yes")},
		{ID: "ins-4", Title: "Workers' Compensation", Level: 2, PageEstimate: 0.5, Generate: insWorkersComp, Condition: when("q10", "Yes")},
		{ID: "ins-5", Title: "Cancellation", Level: 1, PageEstimate: 0.25, Generate: insCancellation},
		{ID: "ins-6", Title: "Authorized Representative", Level: 1, PageEstimate: 0.25, Generate: insAuthorized},
	}
}

func insInfo(a model.Answers) string {
	return paragraphs(
		lines(
			"Insurer: "+a.Lookup("q1", "[Insurer]"),
			"Named Insured: "+a.Lookup("q2", "[Named Insured]"),
			"Certificate Holder: "+a.Lookup("q3", "[Certificate Holder]"),
			"Policy Number: "+a.Lookup("q4", "[Policy Number]"),
			"Policy Period: "+a.Lookup("q5", "[Effective Date]")+" to "+a.Lookup("q6", "[Expiration Date]"),
		),
		"This certificate is issued as a matter of information only and confers no rights upon the certificate holder beyond those stated in Section 3.",
	)
}

func insCoverage(a model.Answers) string {
	return paragraphs(
		lines(
			"Commercial General Liability",
			"- Each Occurrence: "+a.Lookup("q7", "[Limit]"),
			"- Damage to Rented Premises: $100,000",
			"- Medical Expense (any one person): $5,000",
		),
		"Coverage is subject to all terms, exclusions and conditions of the policy issued in the State of "+a.Lookup("q9", "[State]")+".",
	)
}

func insAdditional(a model.Answers) string {
	return a.Lookup("q3", "[Certificate Holder]") + " is included as an additional insured under the commercial general liability policy with respect to liability arising out of the operations of " +
		a.Lookup("q2", "[Named Insured]") + "."
}

func insWorkersComp(model.Answers) string {
	return paragraphs(
		"Workers' compensation coverage is provided at statutory limits.",
		lines(
			"Employers' Liability",
			"- Each Accident: $1,000,000",
			"- Disease, Each Employee: $1,000,000",
		),
	)
}

func insCancellation(a model.Answers) string {
	return "Should the policy be cancelled before " + a.Lookup("q6", "[Expiration Date]") + ", notice will be delivered in accordance with the policy provisions."
}

func insAuthorized(a model.Answers) string {
	return lines("Issued on behalf of "+a.Lookup("q1", "[Insurer]"), "Authorized Representative: ______________________________")
}
