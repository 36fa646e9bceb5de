package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swiftbill/models"
	"swiftbill/services/invoice"
	"swiftbill/services/mail"
)

// EmailHandler exposes the invoice mailing endpoints.
type EmailHandler struct {
	InvoiceService invoice.InvoiceService
	Mailer         mail.Mailer
}

type emailRequest struct {
	InvoiceID string `json:"invoiceId" binding:"required"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
}

// resolveRecipient falls back to the invoice's client email when the
// request does not name one.
func resolveRecipient(req emailRequest, inv *models.Invoice) string {
	if req.Recipient != "" {
		return req.Recipient
	}
	return inv.ClientEmail
}

// SendInvoiceEmailHandler handles POST /api/email/send-invoice. The
// invoice PDF is rendered and attached, and a draft invoice moves to
// sent on success.
func (h *EmailHandler) SendInvoiceEmailHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	data, inv, err := h.InvoiceService.RenderPDF(userID, req.InvoiceID)
	if err != nil {
		respondInvoiceError(c, logger, err)
		return
	}

	recipient := resolveRecipient(req, inv)
	if recipient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No recipient email: set one on the invoice or in the request"})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "Invoice " + inv.InvoiceNumber + " from " + inv.BusinessName
	}

	if err := h.Mailer.SendInvoice(recipient, subject, inv, data); err != nil {
		logger.Error("Failed to send invoice email",
			zap.String("invoiceId", inv.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send email"})
		return
	}

	// First successful delivery moves a draft to sent.
	if inv.Status == models.StatusDraft {
		if updated, err := h.InvoiceService.TransitionStatus(userID, inv.ID, models.StatusSent); err != nil {
			logger.Warn("Invoice emailed but status not updated",
				zap.String("invoiceId", inv.ID), zap.Error(err))
		} else {
			inv = updated
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invoice sent to " + recipient,
		"invoice": inv,
	})
}

// SendPaymentReminderHandler handles POST /api/email/payment-reminder.
func (h *EmailHandler) SendPaymentReminderHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	inv, err := h.InvoiceService.GetInvoice(userID, req.InvoiceID)
	if err != nil {
		respondInvoiceError(c, logger, err)
		return
	}
	if inv.Status == models.StatusPaid || inv.Status == models.StatusDraft {
		c.JSON(http.StatusConflict, gin.H{"error": "Reminders only apply to sent or overdue invoices"})
		return
	}

	recipient := resolveRecipient(req, inv)
	if recipient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No recipient email: set one on the invoice or in the request"})
		return
	}

	daysOverdue := 0
	if d := int(time.Since(inv.DueDate).Hours() / 24); d > 0 {
		daysOverdue = d
	}

	if err := h.Mailer.SendPaymentReminder(recipient, inv, daysOverdue); err != nil {
		logger.Error("Failed to send payment reminder",
			zap.String("invoiceId", inv.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment reminder sent to " + recipient})
}

// SendReceiptHandler handles POST /api/email/send-receipt.
func (h *EmailHandler) SendReceiptHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	inv, err := h.InvoiceService.GetInvoice(userID, req.InvoiceID)
	if err != nil {
		respondInvoiceError(c, logger, err)
		return
	}
	if inv.Status != models.StatusPaid {
		c.JSON(http.StatusConflict, gin.H{"error": "Receipts can only be sent for paid invoices"})
		return
	}

	recipient := resolveRecipient(req, inv)
	if recipient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No recipient email: set one on the invoice or in the request"})
		return
	}

	if err := h.Mailer.SendReceipt(recipient, inv); err != nil {
		logger.Error("Failed to send receipt",
			zap.String("invoiceId", inv.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Receipt sent to " + recipient})
}
