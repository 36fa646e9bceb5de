package mail

import (
	"fmt"
	"html"

	"swiftbill/models"
)

const mailDateLayout = "02/01/2006"

// InvoiceBody renders the HTML body accompanying an invoice mail.
func InvoiceBody(inv *models.Invoice) string {
	return fmt.Sprintf(
		`<h1>Invoice #%s</h1>
<p>Please find your invoice attached.</p>
<p>Total amount due: &#8377;%s</p>
<p>Due date: %s</p>`,
		html.EscapeString(inv.InvoiceNumber),
		html.EscapeString(inv.Total),
		inv.DueDate.Format(mailDateLayout),
	)
}

// ReminderBody renders the HTML body of an overdue payment reminder.
func ReminderBody(inv *models.Invoice, daysOverdue int) string {
	return fmt.Sprintf(
		`<h1>Payment Reminder</h1>
<p>Your payment for Invoice #%s is %d days overdue.</p>
<p>Amount due: &#8377;%s</p>
<p>Please make your payment as soon as possible.</p>`,
		html.EscapeString(inv.InvoiceNumber),
		daysOverdue,
		html.EscapeString(inv.Total),
	)
}

// ReceiptBody renders the HTML body of a payment receipt.
func ReceiptBody(inv *models.Invoice) string {
	return fmt.Sprintf(
		`<h1>Payment Receipt</h1>
<p>Thank you for your payment for Invoice #%s.</p>
<p>Amount paid: &#8377;%s</p>`,
		html.EscapeString(inv.InvoiceNumber),
		html.EscapeString(inv.Total),
	)
}
