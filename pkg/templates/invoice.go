package templates

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-docgen/pkg/model"
)

func invoiceSections() []model.SectionSchema {
	return []model.SectionSchema{
		{ID: "inv-1", Title: "Invoice Details", Level: 1, PageEstimate: 0.5, Generate: invoiceDetails},
		{ID: "inv-2", Title: "Line Items", Level: 1, PageEstimate: 0.75, Generate: invoiceItems},
		{ID: "inv-3", Title: "Totals and Tax", Level: 1, PageEstimate: 0.25, Generate: invoiceTotals},
		{ID: "inv-4", Title: "Payment Terms", Level: 1, PageEstimate: 0.5, Generate: invoiceTerms},
	}
}

func invoiceDetails(a model.Answers) string {
	return paragraphs(
		lines(
			"Invoice Number: "+a.Lookup("q3", "[Invoice Number]"),
			"From: "+a.Lookup("q1", "[Issuing Company]"),
			"Bill To: "+a.Lookup("q2", "[Bill To]"),
			"Currency: "+a.Lookup("q5", "[Currency]"),
		),
		"Please reference the invoice number on all correspondence and remittances.",
	)
}

func invoiceItems(a model.Answers) string {
	items := splitItems(a.Lookup("q7", ""))
	if len(items) == 0 {
		return "1. [Line Items]"
	}
	numbered := make([]string, len(items))
	for i, item := range items {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(numbered, "\n")
}

func invoiceTotals(a model.Answers) string {
	rate := a.Lookup("q6", "[Tax Rate]")
	if v, ok := number(rate); ok {
		rate = fmt.Sprintf("%g%%", v)
	}
	return paragraphs(
		lines(
			"Tax Rate: "+rate,
			"Amounts are stated in "+a.Lookup("q5", "[Currency]")+".",
		),
		"Tax is calculated on the subtotal of all line items listed in Section 2.",
	)
}

func invoiceTerms(a model.Answers) string {
	blocks := []string{
		"Payment Terms: " + a.Lookup("q4", "[Payment Terms]"),
		"Payment is due to " + a.Lookup("q1", "[Issuing Company]") + " in full by the due date.",
	}
	if isYes(a, "q8") {
		blocks = append(blocks, "Late Fee: Balances outstanding after the due date accrue a late fee of 1.5% per month, or the maximum rate permitted by law if lower.")
	}
	return paragraphs(blocks...)
}
