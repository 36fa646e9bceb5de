package invoiceRepo

import (
	"errors"
	"time"

	"swiftbill/models"
)

// ErrNotFound is returned when no invoice matches the query.
var ErrNotFound = errors.New("invoice not found")

// ErrDuplicateInvoiceNumber is returned when an insert collides with the
// unique invoiceNumber index. Two concurrent creations with the same
// client-generated number race on that index; exactly one wins.
var ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")

// InvoiceRepository defines methods for invoice data access.
type InvoiceRepository interface {
	// Create inserts a new invoice record.
	Create(inv *models.Invoice) error
	// GetByID retrieves an invoice by its unique ID.
	GetByID(id string) (*models.Invoice, error)
	// GetByOwner retrieves all invoices of one user, newest first.
	GetByOwner(ownerID string) ([]models.Invoice, error)
	// Update replaces the mutable fields of an existing invoice record.
	Update(inv *models.Invoice) error
	// UpdateStatus persists a status change on one invoice.
	UpdateStatus(id string, status models.InvoiceStatus) error
	// Delete removes an invoice record by its ID.
	Delete(id string) error
	// FindDueBefore returns invoices in the given status whose due date
	// lies before t. Used by the overdue sweep.
	FindDueBefore(status models.InvoiceStatus, t time.Time) ([]models.Invoice, error)
	// CountByOwner returns how many invoices a user owns.
	CountByOwner(ownerID string) (int64, error)
}
