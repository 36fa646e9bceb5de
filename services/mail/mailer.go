package mail

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"swiftbill/config"
	"swiftbill/models"
)

// Mailer delivers invoice mail. Delivery is fire-and-forget from the
// caller's perspective: a returned error means the handoff to SMTP
// failed, not that the recipient never got it.
type Mailer interface {
	SendInvoice(recipient, subject string, inv *models.Invoice, pdfData []byte) error
	SendPaymentReminder(recipient string, inv *models.Invoice, daysOverdue int) error
	SendReceipt(recipient string, inv *models.Invoice) error
}

// SMTPMailer implements Mailer over a plain SMTP dialer.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds the mailer from application config.
func NewSMTPMailer() Mailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
	}
}

// SendInvoice mails the invoice with its PDF attached.
func (m *SMTPMailer) SendInvoice(recipient, subject string, inv *models.Invoice, pdfData []byte) error {
	if subject == "" {
		subject = fmt.Sprintf("Invoice #%s", inv.InvoiceNumber)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", InvoiceBody(inv))

	if len(pdfData) > 0 {
		name := fmt.Sprintf("invoice-%s.pdf", inv.InvoiceNumber)
		msg.Attach(name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdfData)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: failed to send invoice %s: %w", inv.InvoiceNumber, err)
	}
	return nil
}

// SendPaymentReminder mails an overdue notice.
func (m *SMTPMailer) SendPaymentReminder(recipient string, inv *models.Invoice, daysOverdue int) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", fmt.Sprintf("Payment Reminder: Invoice #%s", inv.InvoiceNumber))
	msg.SetBody("text/html", ReminderBody(inv, daysOverdue))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: failed to send reminder for invoice %s: %w", inv.InvoiceNumber, err)
	}
	return nil
}

// SendReceipt mails a payment confirmation.
func (m *SMTPMailer) SendReceipt(recipient string, inv *models.Invoice) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", fmt.Sprintf("Receipt for Invoice #%s", inv.InvoiceNumber))
	msg.SetBody("text/html", ReceiptBody(inv))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: failed to send receipt for invoice %s: %w", inv.InvoiceNumber, err)
	}
	return nil
}
