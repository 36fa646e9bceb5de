package pdf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftbill/models"
	"swiftbill/services/pdf"
)

func sampleInvoice() *models.Invoice {
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return &models.Invoice{
		InvoiceNumber: "INV-2026-042",
		Date:          date,
		DueDate:       date.AddDate(0, 0, 30),
		BusinessName:  "Acme Traders",
		BusinessGST:   "29ABCDE1234F1Z5",
		ClientName:    "Globex Pvt Ltd",
		ClientEmail:   "accounts@globex.example",
		Items: []models.LineItem{
			{Description: "Consulting", Quantity: "2", Rate: "500.00", TaxPercent: 18, Amount: "1000.00"},
			{Description: "Hosting", Quantity: "1", Rate: "1000.00", TaxPercent: 0, Amount: "1000.00"},
		},
		Subtotal:  "2000.00",
		TaxAmount: "180.00",
		Total:     "2180.00",
		Notes:     "Thank you for your business.",
		Terms:     "Payment due within 30 days.",
		Status:    models.StatusDraft,
	}
}

func TestRenderInvoice(t *testing.T) {
	r := pdf.NewRenderer()

	out, err := r.RenderInvoice(sampleInvoice())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderInvoice_Deterministic(t *testing.T) {
	r := pdf.NewRenderer()
	inv := sampleInvoice()

	a, err := r.RenderInvoice(inv)
	require.NoError(t, err)
	b, err := r.RenderInvoice(inv)
	require.NoError(t, err)

	// Same invoice, same layout: lengths match even though gofpdf
	// stamps a creation date into the document metadata.
	assert.Equal(t, len(a), len(b))
}

func TestRenderInvoice_MinimalFields(t *testing.T) {
	inv := sampleInvoice()
	inv.BusinessGST = ""
	inv.ClientEmail = ""
	inv.Notes = ""
	inv.Terms = ""

	out, err := pdf.NewRenderer().RenderInvoice(inv)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
