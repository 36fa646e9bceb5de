package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	invoiceRepo "swiftbill/database/repository/invoice"
	"swiftbill/models"
	"swiftbill/services/billing"
	"swiftbill/services/invoice"
)

// InvoiceHandler exposes invoice endpoints over the invoice service.
type InvoiceHandler struct {
	InvoiceService invoice.InvoiceService
}

// respondInvoiceError maps invoice service errors to HTTP responses.
func respondInvoiceError(c *gin.Context, logger *zap.Logger, err error) {
	var vErr *invoice.ValidationFailedError
	var trErr *billing.StatusTransitionError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invoice validation failed",
			"fields": vErr.Fields,
		})
	case errors.As(err, &trErr):
		c.JSON(http.StatusConflict, gin.H{"error": trErr.Error()})
	case errors.Is(err, invoiceRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
	case errors.Is(err, invoiceRepo.ErrDuplicateInvoiceNumber):
		c.JSON(http.StatusConflict, gin.H{"error": "An invoice with this number already exists"})
	case errors.Is(err, invoice.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this invoice"})
	case errors.Is(err, invoice.ErrQuotaExceeded):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "upgradeRequired": true})
	case errors.Is(err, invoice.ErrNotDraft):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Invoice operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// CreateInvoiceHandler handles POST /api/invoices.
func (h *InvoiceHandler) CreateInvoiceHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.Invoice
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.InvoiceService.CreateInvoice(userID, req)
	if err != nil {
		respondInvoiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListInvoicesHandler handles GET /api/invoices.
func (h *InvoiceHandler) ListInvoicesHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	invoices, err := h.InvoiceService.ListInvoices(userID)
	if err != nil {
		respondInvoiceError(c, logger, err)
		return
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoiceHandler handles GET /api/invoices/:id.
func (h *InvoiceHandler) GetInvoiceHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	inv, err := h.InvoiceService.GetInvoice(userID, c.Param("id"))
	if err != nil {
		respondInvoiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// UpdateInvoiceHandler handles PUT /api/invoices/:id.
func (h *InvoiceHandler) UpdateInvoiceHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.Invoice
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.InvoiceService.UpdateDraft(userID, c.Param("id"), req)
	if err != nil {
		respondInvoiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateStatusHandler handles PATCH /api/invoices/:id/status.
func (h *InvoiceHandler) UpdateStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		Status models.InvoiceStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.InvoiceService.TransitionStatus(userID, c.Param("id"), req.Status)
	if err != nil {
		respondInvoiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteInvoiceHandler handles DELETE /api/invoices/:id.
func (h *InvoiceHandler) DeleteInvoiceHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.InvoiceService.DeleteInvoice(userID, c.Param("id")); err != nil {
		respondInvoiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted"})
}

// DownloadInvoicePDFHandler handles GET /api/invoices/:id/pdf.
func (h *InvoiceHandler) DownloadInvoicePDFHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	data, inv, err := h.InvoiceService.RenderPDF(userID, c.Param("id"))
	if err != nil {
		respondInvoiceError(c, logger, err)
		return
	}

	filename := "invoice-" + inv.InvoiceNumber + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
