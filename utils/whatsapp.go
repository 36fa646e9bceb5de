package utils

import (
	"fmt"
	"net/url"
)

// SendWhatsAppMessage sends a WhatsApp message to the given phone number.
// Replace the body of this function with your actual integration with
// WhatsApp's API. For now, we log the outgoing message.
func SendWhatsAppMessage(phoneNumber, message string) error {
	GetLogger().Sugar().Infof("Sending WhatsApp message to %s: %s", phoneNumber, message)
	return nil
}

// WhatsAppShareLink builds a wa.me link pre-filled with the invoice
// share message, for clients that open the chat themselves.
func WhatsAppShareLink(phoneNumber, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phoneNumber, url.QueryEscape(message))
}

// InvoiceShareMessage composes the standard WhatsApp share text for an invoice.
func InvoiceShareMessage(invoiceNumber, total, pdfURL string) string {
	msg := fmt.Sprintf("Invoice #%s for ₹%s is ready.", invoiceNumber, total)
	if pdfURL != "" {
		msg += " View it here: " + pdfURL
	}
	return msg
}
