package templates

import (
	"fmt"

	"github.com/goliatone/go-docgen/pkg/model"
)

func leaseSections() []model.SectionSchema {
	return []model.SectionSchema{
		{ID: "cl-1", Title: "Article 1. Parties and Premises", Level: 1, PageEstimate: 1, Generate: leaseParties},
		{ID: "cl-2", Title: "Article 2. Term", Level: 1, PageEstimate: 0.75, Generate: leaseTerm},
		{ID: "cl-3", Title: "Article 3. Rent and Security Deposit", Level: 1, PageEstimate: 1.25, Generate: leaseRent},
		{ID: "cl-4", Title: "Article 4. Use and Compliance with Laws", Level: 1, PageEstimate: 0.75, Generate: leaseUse},
		{ID: "cl-5", Title: "Article 5. Maintenance and Repairs", Level: 1, PageEstimate: 1, Generate: leaseMaintenance},
		{ID: "cl-6", Title: "Article 6. Insurance and Indemnity", Level: 1, PageEstimate: 1, Generate: leaseInsurance},
		{ID: "cl-7", Title: "Renewal Option", Level: 2, PageEstimate: 0.5, Generate: leaseRenewal, Condition: when("q10", "Yes")},
		{ID: "cl-8", Title: "Personal Guaranty", Level: 2, PageEstimate: 0.75, Generate: leaseGuaranty, Condition: when("q11", "Yes")},
		{ID: "cl-9", Title: "Article 7. Default and Remedies", Level: 1, PageEstimate: 1, Generate: leaseDefault},
		{ID: "cl-10", Title: "Article 8. Governing Law and Miscellaneous", Level: 1, PageEstimate: 0.75, Generate: leaseMisc},
		{ID: "cl-11", Title: "Signatures", Level: 1, PageEstimate: 0.5, Generate: leaseSignatures},
	}
}

func leaseParties(a model.Answers) string {
	landlord := a.Lookup("q1", "[Landlord Name]")
	tenant := a.Lookup("q2", "[Tenant Name]")
	return paragraphs(
		fmt.Sprintf("This Commercial Lease Agreement (the \"Lease\") is entered into by and between %s (\"Landlord\") and %s (\"Tenant\").", landlord, tenant),
		"1.1 Premises. Landlord leases to Tenant, and Tenant leases from Landlord, the premises located at "+
			a.Lookup("q3", "[Premises Address]")+" (the \"Premises\"), together with the non-exclusive right to use the common areas of the building.",
		"1.2 Condition. Tenant accepts the Premises in their \"as is\" condition as of the Commencement Date, subject to the repair obligations set out in Article 5.",
		"1.3 Measurement. Any statement of rentable area is for reference only and no adjustment of rent shall be made if the actual area differs.",
	)
}

func leaseTerm(a model.Answers) string {
	years := a.Lookup("q6", "[Term]")
	start := a.Lookup("q5", "[Commencement Date]")
	return paragraphs(
		fmt.Sprintf("2.1 Initial Term. The term of this Lease shall be %s year(s), commencing on %s (the \"Commencement Date\").", years, start),
		"2.2 Holdover. If Tenant remains in possession after expiration without a written extension, Tenant shall be a tenant at sufferance and shall pay 150% of the Base Rent then in effect, prorated daily.",
		"2.3 Early Access. Tenant may enter the Premises before the Commencement Date to install fixtures, provided that all insurance required under Section 6.1 is in force.",
	)
}

func leaseRent(a model.Answers) string {
	return paragraphs(
		"3.1 Base Rent. Tenant shall pay monthly base rent of "+a.Lookup("q7", "[Monthly Rent]")+
			" (\"Base Rent\"), in advance, on the first day of each calendar month without demand, deduction or offset.",
		"3.2 Late Charge. Any installment not received within five (5) days after its due date shall bear a late charge equal to five percent (5%) of the overdue amount.",
		"3.3 Security Deposit. Upon execution of this Lease Tenant shall deposit "+a.Lookup("q8", "[Security Deposit]")+
			" with Landlord as security for the performance of Tenant's obligations. Landlord may apply the deposit to cure any default under Article 7.",
		lines(
			"3.4 Additional Rent. Tenant shall also pay, as additional rent:",
			"(a) its proportionate share of operating expenses;",
			"(b) its proportionate share of real estate taxes; and",
			"(c) all utilities separately metered to the Premises.",
		),
	)
}

func leaseUse(a model.Answers) string {
	return paragraphs(
		"4.1 Permitted Use. Tenant shall use the Premises solely for "+a.Lookup("q9", "[Permitted Use]")+" and for no other purpose without Landlord's prior written consent.",
		"4.2 Compliance. Tenant shall comply with all laws, ordinances and regulations of the State of "+a.Lookup("q4", "[State]")+
			" applicable to Tenant's use and occupancy of the Premises.",
		"4.3 Hazardous Materials. Tenant shall not bring onto the Premises any hazardous materials other than ordinary office and cleaning supplies in customary quantities.",
	)
}

func leaseMaintenance(model.Answers) string {
	return paragraphs(
		"5.1 Landlord Obligations. Landlord shall maintain the roof, foundation, structural walls and building systems serving the Premises in good condition and repair.",
		"5.2 Tenant Obligations. Tenant shall keep the interior of the Premises, including doors, windows and fixtures, in good, clean and safe condition, ordinary wear and tear excepted.",
		"5.3 Alterations. Tenant shall not make alterations exceeding $10,000 in cost without Landlord's prior written consent, which shall not be unreasonably withheld.",
		"5.4 Surrender. At the end of the Term Tenant shall surrender the Premises broom clean and in the condition required by Section 5.2.",
	)
}

func leaseInsurance(a model.Answers) string {
	return paragraphs(
		"6.1 Tenant Insurance. Tenant shall maintain commercial general liability insurance with limits of not less than $1,000,000 per occurrence, naming "+
			a.Lookup("q1", "[Landlord Name]")+" as additional insured.",
		"6.2 Waiver of Subrogation. Each party waives all rights of recovery against the other for losses covered by property insurance required under this Lease.",
		"6.3 Indemnity. Tenant shall indemnify, defend and hold Landlord harmless from claims arising from Tenant's use of the Premises, except to the extent caused by Landlord's negligence.",
	)
}

func leaseRenewal(a model.Answers) string {
	return paragraphs(
		fmt.Sprintf("Provided Tenant is not in default, Tenant may extend the Term for one additional period of %s year(s) by written notice given at least nine (9) months before expiration.", a.Lookup("q6", "[Term]")),
		"Base Rent for the renewal term shall equal the greater of the Base Rent in effect at expiration or ninety-five percent (95%) of fair market rent.",
	)
}

func leaseGuaranty(a model.Answers) string {
	return paragraphs(
		a.Lookup("q12", "[Guarantor Name]")+" (\"Guarantor\") unconditionally guarantees the full and punctual payment and performance of all obligations of "+
			a.Lookup("q2", "[Tenant Name]")+" under this Lease.",
		"This guaranty is a guaranty of payment and not of collection and shall survive any assignment or subletting permitted under this Lease.",
	)
}

func leaseDefault(model.Answers) string {
	return paragraphs(
		lines(
			"7.1 Events of Default. Each of the following is an event of default:",
			"(a) failure to pay rent within five (5) days after written notice;",
			"(b) failure to perform any other obligation within thirty (30) days after written notice; or",
			"(c) Tenant's insolvency, assignment for the benefit of creditors or abandonment of the Premises.",
		),
		"7.2 Remedies. Upon an event of default Landlord may terminate this Lease, re-enter the Premises and recover all damages permitted by law, including the rent deficiency for the remainder of the Term.",
		"7.3 Landlord Default. Landlord shall not be in default unless it fails to perform within thirty (30) days after written notice from Tenant.",
	)
}

func leaseMisc(a model.Answers) string {
	return paragraphs(
		"8.1 Governing Law. This Lease is governed by the laws of the State of "+a.Lookup("q4", "[State]")+".",
		"8.2 Notices. Notices shall be in writing and delivered to the addresses of the parties set out in Article 1.",
		"8.3 Entire Agreement. This Lease constitutes the entire agreement of the parties and may be amended only in a writing signed by both parties.",
		"8.4 Severability. If any provision is held invalid, the remaining provisions shall remain in full force and effect.",
	)
}

func leaseSignatures(a model.Answers) string {
	return paragraphs(
		"IN WITNESS WHEREOF, the parties have executed this Lease as of the Commencement Date.",
		lines("LANDLORD: "+a.Lookup("q1", "[Landlord Name]"), "By: ______________________________", "Name / Title:"),
		lines("TENANT: "+a.Lookup("q2", "[Tenant Name]"), "By: ______________________________", "Name / Title:"),
	)
}
