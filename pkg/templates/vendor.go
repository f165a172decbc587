package templates

import (
	"github.com/goliatone/go-docgen/pkg/model"
)

func vendorSections() []model.SectionSchema {
	return []model.SectionSchema{
		{ID: "vp-1", Title: "Vendor Information", Level: 1, PageEstimate: 0.5, Generate: vendorInfo},
		{ID: "vp-2", Title: "Tax and Payment Details", Level: 1, PageEstimate: 0.5, Generate: vendorPayment},
		{ID: "vp-3", Title: "Compliance Requirements", Level: 1, PageEstimate: 0.75, Generate: vendorCompliance},
		{ID: "vp-4", Title: "Code of Conduct Acknowledgement", Level: 1, PageEstimate: 0.5, Generate: vendorConduct},
		{ID: "vp-5", Title: "Data Security Questionnaire", Level: 2, PageEstimate: 1, Generate: vendorSecurity, Condition: when("q9", "Yes")},
		{ID: "vp-6", Title: "Certification and Signature", Level: 1, PageEstimate: 0.5, Generate: vendorCertification},
	}
}

func vendorInfo(a model.Answers) string {
	return paragraphs(
		lines(
			"Purchasing Company: "+a.Lookup("q1", "[Purchasing Company]"),
			"Vendor Legal Name: "+a.Lookup("q2", "[Vendor Name]"),
			"Business Address: "+a.Lookup("q3", "[Address]"),
			"Primary Contact: "+a.Lookup("q5", "[Email]"),
			"Category: "+a.Lookup("q7", "[Category]"),
			"State of Incorporation: "+a.Lookup("q8", "[State]"),
		),
	)
}

func vendorPayment(a model.Answers) string {
	method := a.Lookup("q6", "[Payment Method]")
	blocks := []string{
		lines(
			"Taxpayer Identification Number: "+a.Lookup("q4", "[TIN]"),
			"Payment Method: "+method,
		),
	}
	switch method {
	case "ACH", "Wire":
		blocks = append(blocks, "Banking details must be provided on company letterhead and will be verified by callback before the first payment.")
	case "Check":
		blocks = append(blocks, "Checks will be mailed to the business address listed in the Vendor Information section.")
	}
	return paragraphs(blocks...)
}

func vendorCompliance(model.Answers) string {
	return paragraphs(
		lines(
			"The vendor confirms that it:",
			"☐ maintains a current W-9 or equivalent tax form on file;",
			"☐ is not listed on any government sanctions or debarment list;",
			"☐ carries commercial general liability insurance; and",
			"☐ complies with applicable anti-bribery laws.",
		),
		"The purchasing company may request supporting evidence for any item at any time.",
	)
}

func vendorConduct(a model.Answers) string {
	return paragraphs(
		a.Lookup("q2", "[Vendor Name]")+" acknowledges receipt of the supplier code of conduct of "+a.Lookup("q1", "[Purchasing Company]")+" and agrees to comply with it.",
		"Violations may result in suspension of purchase orders or termination of the vendor relationship.",
	)
}

func vendorSecurity(model.Answers) string {
	return paragraphs(
		lines(
			"1. Does the vendor maintain a written information security program?",
			"2. Is personal data encrypted in transit and at rest?",
			"3. Does the vendor hold a current SOC 2 Type II report or ISO 27001 certification?",
			"4. Are subprocessors bound by written data protection terms?",
			"5. How quickly will the vendor report a security incident?",
		),
		"Answers to this questionnaire must be returned before any personal data is shared.",
	)
}

func vendorCertification(a model.Answers) string {
	return paragraphs(
		"The undersigned certifies that the information in this package is true and complete.",
		lines("VENDOR: "+a.Lookup("q2", "[Vendor Name]"), "Authorized Signature: ______________________________", "Date:"),
	)
}
