package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"swiftbill/models"
	"swiftbill/services/billing"
)

func validInvoice() *models.Invoice {
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return &models.Invoice{
		InvoiceNumber: "INV-2026-001",
		Date:          date,
		DueDate:       date.AddDate(0, 0, 30),
		BusinessName:  "Acme Traders",
		BusinessGST:   "29ABCDE1234F1Z5",
		ClientName:    "Globex Pvt Ltd",
		Items: []models.LineItem{
			{Description: "Consulting", Quantity: "2", Rate: "500", TaxPercent: 18},
		},
	}
}

func fields(errs []billing.FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidateInvoice_Valid(t *testing.T) {
	assert.Empty(t, billing.ValidateInvoice(validInvoice()))
}

func TestValidateInvoice_RequiredFields(t *testing.T) {
	inv := validInvoice()
	inv.InvoiceNumber = ""
	inv.BusinessName = "  "
	inv.ClientName = ""

	got := fields(billing.ValidateInvoice(inv))
	assert.Contains(t, got, "invoiceNumber")
	assert.Contains(t, got, "businessName")
	assert.Contains(t, got, "clientName")
}

func TestValidateInvoice_DueDateBeforeDate(t *testing.T) {
	inv := validInvoice()
	inv.DueDate = inv.Date.AddDate(0, 0, -1)

	assert.Contains(t, fields(billing.ValidateInvoice(inv)), "dueDate")
}

func TestValidateInvoice_DueDateEqualDateIsValid(t *testing.T) {
	inv := validInvoice()
	inv.DueDate = inv.Date

	assert.Empty(t, billing.ValidateInvoice(inv))
}

func TestValidateInvoice_GSTFormat(t *testing.T) {
	inv := validInvoice()
	inv.ClientGST = "short"
	assert.Contains(t, fields(billing.ValidateInvoice(inv)), "clientGST")

	// Optional fields: empty GST is fine.
	inv.ClientGST = ""
	inv.BusinessGST = ""
	assert.Empty(t, billing.ValidateInvoice(inv))
}

func TestValidateInvoice_NoItems(t *testing.T) {
	inv := validInvoice()
	inv.Items = nil

	assert.Contains(t, fields(billing.ValidateInvoice(inv)), "items")
}

func TestValidateInvoice_BadItems(t *testing.T) {
	inv := validInvoice()
	inv.Items = []models.LineItem{
		{Description: "", Quantity: "-1", Rate: "abc", TaxPercent: 7},
	}

	got := fields(billing.ValidateInvoice(inv))
	assert.Contains(t, got, "items[0].description")
	assert.Contains(t, got, "items[0].quantity")
	assert.Contains(t, got, "items[0].rate")
	assert.Contains(t, got, "items[0].taxPercent")
}

func TestValidGSTIN(t *testing.T) {
	tests := []struct {
		gstin string
		ok    bool
	}{
		{"29ABCDE1234F1Z5", true},
		{"07AAAAA0000A1Z5", true},
		{"29abcde1234f1z5", true}, // case-insensitive
		{"29ABCDE1234F1Z", false}, // 14 chars
		{"2XABCDE1234F1Z5", false},
		{"29ABCDE1234FXZ5", false}, // entity position must be a digit
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, billing.ValidGSTIN(tt.gstin), "gstin %q", tt.gstin)
	}
}
