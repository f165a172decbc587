package templates

import (
	"fmt"

	"github.com/goliatone/go-docgen/pkg/model"
)

func msaSections() []model.SectionSchema {
	return []model.SectionSchema{
		{ID: "msa-1", Title: "1. Definitions", Level: 1, PageEstimate: 1, Generate: msaDefinitions},
		{ID: "msa-2", Title: "2. Services", Level: 1, PageEstimate: 1, Generate: msaServices},
		{ID: "msa-3", Title: "3. Fees and Payment", Level: 1, PageEstimate: 0.75, Generate: msaFees},
		{ID: "msa-4", Title: "4. Term and Termination", Level: 1, PageEstimate: 0.75, Generate: msaTerm},
		{ID: "msa-5", Title: "5. Confidentiality", Level: 1, PageEstimate: 1, Generate: msaConfidentiality},
		{ID: "msa-6", Title: "6. Intellectual Property", Level: 1, PageEstimate: 0.75, Generate: msaIP},
		{ID: "msa-7", Title: "Data Protection Addendum", Level: 2, PageEstimate: 1.5, Generate: msaDPA, Condition: when("q8", "Yes")},
		{ID: "msa-8", Title: "7. Warranties", Level: 1, PageEstimate: 0.5, Generate: msaWarranties},
		{ID: "msa-9", Title: "8. Limitation of Liability", Level: 1, PageEstimate: 0.75, Generate: msaLiability},
		{ID: "msa-10", Title: "Non-Solicitation", Level: 2, PageEstimate: 0.5, Generate: msaNonSolicit, Condition: when("q10", "Yes")},
		{ID: "msa-11", Title: "9. General Provisions", Level: 1, PageEstimate: 1, Generate: msaGeneral},
		{ID: "msa-12", Title: "Signatures", Level: 1, PageEstimate: 0.5, Generate: msaSignatures},
	}
}

func msaDefinitions(a model.Answers) string {
	return paragraphs(
		fmt.Sprintf("This Master Service Agreement (the \"Agreement\") is made as of %s between %s (\"Provider\") and %s (\"Client\").",
			a.Lookup("q3", "[Effective Date]"), a.Lookup("q1", "[Provider Name]"), a.Lookup("q2", "[Client Name]")),
		"1.1 \"Deliverables\" means all work product provided to Client under a Statement of Work.",
		"1.2 \"Statement of Work\" or \"SOW\" means a document executed by both parties describing specific services, fees and timelines.",
		"1.3 \"Confidential Information\" has the meaning given in Section 5.1.",
	)
}

func msaServices(a model.Answers) string {
	return paragraphs(
		"2.1 Scope. Provider shall perform the following services for Client:",
		a.Lookup("q5", "[Description of Services]"),
		"2.2 Statements of Work. Each SOW is incorporated into this Agreement. If an SOW conflicts with this Agreement, this Agreement controls unless the SOW expressly references the provision it overrides.",
		"2.3 Personnel. Provider shall assign qualified personnel and remains responsible for the acts of its subcontractors.",
	)
}

func msaFees(a model.Answers) string {
	return paragraphs(
		"3.1 Fees. Client shall pay the fees set out in each SOW. Invoices are payable "+a.Lookup("q6", "[Payment Terms]")+" from the invoice date.",
		"3.2 Expenses. Pre-approved, reasonable out-of-pocket expenses shall be reimbursed at cost.",
		"3.3 Disputed Amounts. Client may withhold amounts disputed in good faith, provided it notifies Provider in writing within fifteen (15) days of receipt of the invoice.",
	)
}

func msaTerm(a model.Answers) string {
	return paragraphs(
		"4.1 Term. This Agreement begins on the Effective Date and continues for "+a.Lookup("q9", "[Term]")+" month(s), renewing automatically for successive one-year periods unless either party gives sixty (60) days' notice of non-renewal.",
		"4.2 Termination for Cause. Either party may terminate if the other materially breaches and fails to cure within thirty (30) days after written notice.",
		"4.3 Effect. Sections 5, 6 and 8 survive termination.",
	)
}

func msaConfidentiality(model.Answers) string {
	return paragraphs(
		"5.1 Definition. Confidential Information means non-public information disclosed by one party to the other that is marked confidential or would reasonably be understood to be confidential.",
		"5.2 Obligations. The receiving party shall use Confidential Information only to perform this Agreement and shall protect it with at least reasonable care.",
		lines(
			"5.3 Exclusions. Confidential Information does not include information that:",
			"(a) is or becomes public through no fault of the receiving party;",
			"(b) was known to the receiving party without restriction before disclosure; or",
			"(c) is independently developed without use of the disclosing party's information.",
		),
	)
}

func msaIP(model.Answers) string {
	return paragraphs(
		"6.1 Ownership. Upon full payment, Client owns all Deliverables, excluding Provider's pre-existing materials.",
		"6.2 License. Provider grants Client a perpetual, non-exclusive license to use pre-existing materials incorporated in the Deliverables.",
	)
}

func msaDPA(a model.Answers) string {
	return paragraphs(
		"Provider shall process personal data on behalf of "+a.Lookup("q2", "[Client Name]")+" only on documented instructions and in accordance with applicable data protection law.",
		lines(
			"Provider shall:",
			"- implement appropriate technical and organisational security measures;",
			"- notify Client without undue delay after becoming aware of a personal data breach;",
			"- ensure personnel are bound by confidentiality obligations; and",
			"- delete or return personal data at the end of the services.",
		),
		"Client may audit Provider's compliance with this addendum once per year on thirty (30) days' notice.",
	)
}

func msaWarranties(model.Answers) string {
	return paragraphs(
		"7.1 Provider warrants that the services will be performed in a professional and workmanlike manner consistent with industry standards.",
		"7.2 Except as stated in Section 7.1, neither party makes any other warranty, express or implied.",
	)
}

func msaLiability(a model.Answers) string {
	limit := a.Lookup("q7", "[Liability Cap]")
	clause := "8.1 Cap. Each party's aggregate liability under this Agreement shall not exceed " + limit + "."
	if limit == "Unlimited" {
		clause = "8.1 Cap. The parties agree that liability under this Agreement is not subject to a monetary cap."
	}
	return paragraphs(
		clause,
		"8.2 Exclusion. Neither party is liable for indirect, incidental, special or consequential damages, except for breach of Section 5.",
	)
}

func msaNonSolicit(model.Answers) string {
	return paragraphs(
		"During the term and for twelve (12) months afterward, neither party shall solicit for employment any employee of the other party who was directly involved in the services.",
		"General advertisements not targeted at the other party's personnel do not violate this covenant.",
	)
}

func msaGeneral(a model.Answers) string {
	return paragraphs(
		"9.1 Governing Law. This Agreement is governed by the laws of the State of "+a.Lookup("q4", "[State]")+", without regard to its conflict of laws rules.",
		"9.2 Assignment. Neither party may assign this Agreement without consent, except to a successor of substantially all of its business.",
		"9.3 Force Majeure. Neither party is liable for delays caused by events beyond its reasonable control.",
		"9.4 Entire Agreement. This Agreement and all SOWs constitute the entire agreement of the parties.",
	)
}

func msaSignatures(a model.Answers) string {
	return paragraphs(
		"The parties have executed this Agreement by their authorized representatives.",
		lines("PROVIDER: "+a.Lookup("q1", "[Provider Name]"), "By: ______________________________", "Date:"),
		lines("CLIENT: "+a.Lookup("q2", "[Client Name]"), "By: ______________________________", "Date:"),
	)
}
