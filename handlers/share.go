package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swiftbill/services/invoice"
	"swiftbill/utils"
)

// ShareHandler exposes the WhatsApp sharing endpoint.
type ShareHandler struct {
	InvoiceService invoice.InvoiceService
	// Send dispatches the share message. Defaults to the WhatsApp
	// dispatcher when unset.
	Send func(phoneNumber, message string) error
}

func (h *ShareHandler) send(phone, message string) error {
	if h.Send != nil {
		return h.Send(phone, message)
	}
	return utils.SendWhatsAppMessage(phone, message)
}

// WhatsAppShareHandler handles POST /api/share/whatsapp. The share
// message is dispatched to the client's number and a wa.me link is
// returned for chats the user opens themselves.
func (h *ShareHandler) WhatsAppShareHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		InvoiceID string `json:"invoiceId" binding:"required"`
		Phone     string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	inv, err := h.InvoiceService.GetInvoice(userID, req.InvoiceID)
	if err != nil {
		respondInvoiceError(c, logger, err)
		return
	}

	phone := req.Phone
	if phone == "" {
		phone = inv.ClientPhone
	}
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No phone number: set one on the invoice or in the request"})
		return
	}

	message := utils.InvoiceShareMessage(inv.InvoiceNumber, inv.Total, inv.PDFURL)
	if err := h.send(phone, message); err != nil {
		logger.Error("Failed to dispatch WhatsApp message",
			zap.String("invoiceId", inv.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send WhatsApp message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shareUrl": utils.WhatsAppShareLink(phone, message),
		"message":  message,
	})
}
