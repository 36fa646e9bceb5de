package invoice

import (
	"time"

	invoiceRepo "swiftbill/database/repository/invoice"
	"swiftbill/models"
	"swiftbill/services/pdf"
	"swiftbill/services/storage"
	"swiftbill/services/user"
)

// InvoiceService is the application surface over the billing core:
// persistence, ownership checks, the draft-only mutation rule and the
// PDF pipeline.
type InvoiceService interface {
	CreateInvoice(ownerID string, req models.Invoice) (*models.Invoice, error)
	GetInvoice(ownerID, id string) (*models.Invoice, error)
	ListInvoices(ownerID string) ([]models.Invoice, error)
	UpdateDraft(ownerID, id string, req models.Invoice) (*models.Invoice, error)
	TransitionStatus(ownerID, id string, newStatus models.InvoiceStatus) (*models.Invoice, error)
	DeleteInvoice(ownerID, id string) error
	RenderPDF(ownerID, id string) ([]byte, *models.Invoice, error)
	// MarkOverdue flips every sent invoice past its due date to overdue
	// and returns the affected invoices. Called by the hourly sweep.
	MarkOverdue(now time.Time) ([]models.Invoice, error)
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo    invoiceRepo.InvoiceRepository
	Users   user.UserService
	PDF     pdf.Renderer
	Storage storage.StorageService
}
