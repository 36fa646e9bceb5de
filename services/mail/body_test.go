package mail_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"swiftbill/models"
	"swiftbill/services/mail"
)

func mailInvoice() *models.Invoice {
	return &models.Invoice{
		InvoiceNumber: "INV-7",
		Total:         "2180.00",
		DueDate:       time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestInvoiceBody(t *testing.T) {
	body := mail.InvoiceBody(mailInvoice())
	assert.Contains(t, body, "Invoice #INV-7")
	assert.Contains(t, body, "2180.00")
	assert.Contains(t, body, "01/05/2026")
}

func TestReminderBody(t *testing.T) {
	body := mail.ReminderBody(mailInvoice(), 9)
	assert.Contains(t, body, "9 days overdue")
	assert.Contains(t, body, "2180.00")
}

func TestReceiptBody(t *testing.T) {
	body := mail.ReceiptBody(mailInvoice())
	assert.Contains(t, body, "Payment Receipt")
	assert.Contains(t, body, "INV-7")
}

func TestBodiesEscapeHTML(t *testing.T) {
	inv := mailInvoice()
	inv.InvoiceNumber = `<script>alert(1)</script>`
	assert.NotContains(t, mail.InvoiceBody(inv), "<script>")
}
