package invoiceRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"swiftbill/database"
	"swiftbill/models"
)

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo creates a new instance of InvoiceRepository using MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("invoices")
	repo := &MongoInvoiceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create invoice indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new invoice document. A collision on the unique
// invoiceNumber index is reported as ErrDuplicateInvoiceNumber.
func (r *MongoInvoiceRepo) Create(inv *models.Invoice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice by its unique ID.
func (r *MongoInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inv models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch invoice with id %s: %w", id, err)
	}
	return &inv, nil
}

// Update replaces the mutable fields of an existing invoice document.
// The invoiceNumber is immutable after creation and is excluded from
// the update document.
func (r *MongoInvoiceRepo) Update(inv *models.Invoice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	inv.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"date":            inv.Date,
		"dueDate":         inv.DueDate,
		"businessName":    inv.BusinessName,
		"businessGst":     inv.BusinessGST,
		"businessAddress": inv.BusinessAddress,
		"clientName":      inv.ClientName,
		"clientEmail":     inv.ClientEmail,
		"clientPhone":     inv.ClientPhone,
		"clientGst":       inv.ClientGST,
		"clientAddress":   inv.ClientAddress,
		"items":           inv.Items,
		"subtotal":        inv.Subtotal,
		"taxAmount":       inv.TaxAmount,
		"total":           inv.Total,
		"notes":           inv.Notes,
		"terms":           inv.Terms,
		"status":          inv.Status,
		"pdfAssetId":      inv.PDFAssetID,
		"pdfUrl":          inv.PDFURL,
		"updatedAt":       inv.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": inv.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update invoice with id %s: %w", inv.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus persists a status change on one invoice.
func (r *MongoInvoiceRepo) UpdateStatus(id string, status models.InvoiceStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status of invoice %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an invoice document by its ID.
func (r *MongoInvoiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete invoice with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
