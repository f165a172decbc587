package templates

import (
	"github.com/goliatone/go-docgen/pkg/model"
)

func employmentSections() []model.SectionSchema {
	return []model.SectionSchema{
		{ID: "emp-1", Title: "1. Position and Duties", Level: 1, PageEstimate: 0.75, Generate: empPosition},
		{ID: "emp-2", Title: "2. Term and Probation", Level: 1, PageEstimate: 0.5, Generate: empTerm},
		{ID: "emp-3", Title: "3. Compensation", Level: 1, PageEstimate: 0.75, Generate: empCompensation},
		{ID: "emp-4", Title: "4. Benefits and Paid Time Off", Level: 1, PageEstimate: 0.75, Generate: empBenefits},
		{ID: "emp-5", Title: "5. Confidentiality and Inventions", Level: 1, PageEstimate: 1, Generate: empConfidentiality},
		{ID: "emp-6", Title: "Non-Competition", Level: 2, PageEstimate: 0.75, Generate: empNonCompete, Condition: when("q8", "Yes")},
		{ID: "emp-7", Title: "6. Termination", Level: 1, PageEstimate: 0.75, Generate: empTermination},
		{ID: "emp-8", Title: "7. Governing Law", Level: 1, PageEstimate: 0.25, Generate: empLaw},
		{ID: "emp-9", Title: "Signatures", Level: 1, PageEstimate: 0.5, Generate: empSignatures},
	}
}

func empPosition(a model.Answers) string {
	return paragraphs(
		"This Employment Contract is entered into by "+a.Lookup("q1", "[Employer Name]")+" (the \"Company\") and "+a.Lookup("q2", "[Employee Name]")+" (the \"Employee\").",
		"1.1 Position. The Company employs the Employee as "+a.Lookup("q3", "[Job Title]")+" on a "+a.Lookup("q7", "[Employment Type]")+" basis.",
		"1.2 Duties. The Employee shall perform the duties customarily associated with the position and such other duties as the Company reasonably assigns.",
	)
}

func empTerm(a model.Answers) string {
	return paragraphs(
		"2.1 Start Date. Employment begins on "+a.Lookup("q4", "[Start Date]")+" and continues until terminated under Section 6.1 or Section 6.2.",
		"2.2 Probation. The first "+a.Lookup("q9", "3")+" month(s) of employment are a probationary period during which either party may terminate on one week's notice.",
	)
}

func empCompensation(a model.Answers) string {
	return paragraphs(
		"3.1 Salary. The Company shall pay the Employee an annual base salary of "+a.Lookup("q6", "[Salary]")+", less applicable withholdings, in accordance with the Company's regular payroll schedule.",
		"3.2 Review. Compensation shall be reviewed at least annually.",
	)
}

func empBenefits(a model.Answers) string {
	return paragraphs(
		"4.1 Paid Time Off. The Employee is entitled to "+a.Lookup("q10", "[PTO Days]")+" days of paid time off per year, accruing pro rata.",
		lines(
			"4.2 Benefits. The Employee may participate in:",
			"- group health, dental and vision plans;",
			"- the Company retirement plan; and",
			"- any other benefit plans the Company makes available to similarly situated employees.",
		),
	)
}

func empConfidentiality(model.Answers) string {
	return paragraphs(
		"5.1 Confidential Information. The Employee shall not disclose or use the Company's confidential information except as required to perform the Employee's duties, during or after employment.",
		"5.2 Inventions. All inventions conceived by the Employee within the scope of employment are the sole property of the Company, and the Employee assigns all rights in them to the Company.",
		"5.3 Return of Property. Upon termination the Employee shall return all Company property and records.",
	)
}

func empNonCompete(a model.Answers) string {
	return paragraphs(
		"For twelve (12) months after termination, the Employee shall not engage in a business that competes directly with the Company within the territory where the Employee worked, to the extent permitted by the laws of "+a.Lookup("q5", "[State]")+".",
		"If a court finds this covenant unenforceable as written, it shall be enforced to the maximum extent permitted.",
	)
}

func empTermination(model.Answers) string {
	return paragraphs(
		"6.1 By the Company. The Company may terminate employment for cause immediately, or without cause on two (2) weeks' written notice or pay in lieu of notice.",
		"6.2 By the Employee. The Employee may resign on two (2) weeks' written notice.",
		"6.3 Final Pay. Upon termination the Company shall pay all earned and unpaid salary and accrued, unused paid time off as required by law.",
	)
}

func empLaw(a model.Answers) string {
	return "7.1 This Contract is governed by the laws of the State of " + a.Lookup("q5", "[State]") + "."
}

func empSignatures(a model.Answers) string {
	return paragraphs(
		lines("COMPANY: "+a.Lookup("q1", "[Employer Name]"), "By: ______________________________", "Date:"),
		lines("EMPLOYEE: "+a.Lookup("q2", "[Employee Name]"), "Signature: ______________________________", "Date:"),
	)
}
