package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"swiftbill/models"
	"swiftbill/services/billing"
	"swiftbill/utils"
)

// computeDerivedFields parses the line items, recomputes every derived
// amount and fills the three totals. Client-supplied amounts are ignored.
func computeDerivedFields(inv *models.Invoice) error {
	items := make([]billing.Item, len(inv.Items))
	for i, li := range inv.Items {
		qty, err := billing.ParseDecimal(fmt.Sprintf("items[%d].quantity", i), li.Quantity)
		if err != nil {
			return err
		}
		rate, err := billing.ParseDecimal(fmt.Sprintf("items[%d].rate", i), li.Rate)
		if err != nil {
			return err
		}
		items[i] = billing.Item{Quantity: qty, Rate: rate, TaxPercent: li.TaxPercent}

		amount, err := billing.ComputeItemAmount(qty, rate)
		if err != nil {
			return err
		}
		inv.Items[i].Amount = billing.Money(amount)
	}

	totals, err := billing.ComputeTotals(items)
	if err != nil {
		return err
	}
	inv.Subtotal = billing.Money(totals.Subtotal)
	inv.TaxAmount = billing.Money(totals.TaxAmount)
	inv.Total = billing.Money(totals.Total)
	return nil
}

// CreateInvoice validates the request, computes all derived fields and
// persists a new draft. The rendered PDF is uploaded best-effort: a
// storage outage never loses the invoice itself.
func (s *DefaultInvoiceService) CreateInvoice(ownerID string, req models.Invoice) (*models.Invoice, error) {
	ok, err := s.Users.CanCreateInvoice(ownerID)
	if err != nil {
		utils.GetLogger().Error("CreateInvoice: quota check failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create invoice, please try again")
	}
	if !ok {
		return nil, ErrQuotaExceeded
	}

	if errs := billing.ValidateInvoice(&req); len(errs) > 0 {
		return nil, &ValidationFailedError{Fields: errs}
	}
	if err := computeDerivedFields(&req); err != nil {
		return nil, err
	}

	req.ID = uuid.New().String()
	req.OwnerID = ownerID
	req.Status = models.StatusDraft
	req.PDFAssetID = ""
	req.PDFURL = ""

	if err := s.Repo.Create(&req); err != nil {
		return nil, err
	}
	if err := s.Users.IncrementInvoiceCount(ownerID); err != nil {
		utils.GetLogger().Warn("CreateInvoice: failed to bump invoice count", zap.Error(err))
	}

	s.attachPDF(&req)
	return &req, nil
}

// attachPDF renders and uploads the invoice PDF, storing the asset
// reference on the record. Failures are logged, not propagated.
func (s *DefaultInvoiceService) attachPDF(inv *models.Invoice) {
	if s.PDF == nil || s.Storage == nil {
		return
	}
	data, err := s.PDF.RenderInvoice(inv)
	if err != nil {
		utils.GetLogger().Error("attachPDF: render failed", zap.String("invoice", inv.InvoiceNumber), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	assetID, url, err := s.Storage.UploadPDF(ctx, "invoice-"+inv.InvoiceNumber, data)
	if err != nil {
		utils.GetLogger().Error("attachPDF: upload failed", zap.String("invoice", inv.InvoiceNumber), zap.Error(err))
		return
	}

	inv.PDFAssetID = assetID
	inv.PDFURL = url
	if err := s.Repo.Update(inv); err != nil {
		utils.GetLogger().Error("attachPDF: failed to store asset reference", zap.Error(err))
	}
}

// GetInvoice fetches one invoice, enforcing ownership.
func (s *DefaultInvoiceService) GetInvoice(ownerID, id string) (*models.Invoice, error) {
	inv, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return inv, nil
}

// ListInvoices returns the owner's invoices, newest first.
func (s *DefaultInvoiceService) ListInvoices(ownerID string) ([]models.Invoice, error) {
	return s.Repo.GetByOwner(ownerID)
}

// UpdateDraft replaces the mutable fields of a draft invoice and
// recomputes totals. Invoices that have left draft are immutable; the
// invoice number never changes.
func (s *DefaultInvoiceService) UpdateDraft(ownerID, id string, req models.Invoice) (*models.Invoice, error) {
	existing, err := s.GetInvoice(ownerID, id)
	if err != nil {
		return nil, err
	}
	if existing.Status != models.StatusDraft {
		return nil, ErrNotDraft
	}

	// invoiceNumber is immutable after creation.
	req.InvoiceNumber = existing.InvoiceNumber
	if errs := billing.ValidateInvoice(&req); len(errs) > 0 {
		return nil, &ValidationFailedError{Fields: errs}
	}
	if err := computeDerivedFields(&req); err != nil {
		return nil, err
	}

	req.ID = existing.ID
	req.OwnerID = existing.OwnerID
	req.Status = models.StatusDraft
	req.CreatedAt = existing.CreatedAt
	req.PDFAssetID = existing.PDFAssetID
	req.PDFURL = existing.PDFURL

	if err := s.Repo.Update(&req); err != nil {
		return nil, err
	}
	s.attachPDF(&req)
	return &req, nil
}

// TransitionStatus moves an invoice along its lifecycle.
func (s *DefaultInvoiceService) TransitionStatus(ownerID, id string, newStatus models.InvoiceStatus) (*models.Invoice, error) {
	existing, err := s.GetInvoice(ownerID, id)
	if err != nil {
		return nil, err
	}

	updated, err := billing.TransitionStatus(*existing, newStatus)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(id, updated.Status); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteInvoice removes an invoice and its stored PDF.
func (s *DefaultInvoiceService) DeleteInvoice(ownerID, id string) error {
	existing, err := s.GetInvoice(ownerID, id)
	if err != nil {
		return err
	}

	if existing.PDFAssetID != "" && s.Storage != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Storage.DeletePDF(ctx, existing.PDFAssetID); err != nil {
			utils.GetLogger().Warn("DeleteInvoice: failed to delete stored PDF", zap.Error(err))
		}
	}
	return s.Repo.Delete(id)
}

// RenderPDF renders the invoice on demand and returns the bytes along
// with the invoice record.
func (s *DefaultInvoiceService) RenderPDF(ownerID, id string) ([]byte, *models.Invoice, error) {
	inv, err := s.GetInvoice(ownerID, id)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.PDF.RenderInvoice(inv)
	if err != nil {
		return nil, nil, err
	}
	return data, inv, nil
}

// MarkOverdue advances every sent invoice past its due date to overdue
// through the normal transition rules and returns the affected records.
func (s *DefaultInvoiceService) MarkOverdue(now time.Time) ([]models.Invoice, error) {
	due, err := s.Repo.FindDueBefore(models.StatusSent, now)
	if err != nil {
		return nil, err
	}

	var marked []models.Invoice
	for _, inv := range due {
		updated, err := billing.TransitionStatus(inv, models.StatusOverdue)
		if err != nil {
			// Sweep raced with a concurrent paid transition; skip.
			continue
		}
		if err := s.Repo.UpdateStatus(inv.ID, updated.Status); err != nil {
			utils.GetLogger().Error("MarkOverdue: failed to persist transition",
				zap.String("invoice", inv.InvoiceNumber), zap.Error(err))
			continue
		}
		marked = append(marked, updated)
	}
	return marked, nil
}
