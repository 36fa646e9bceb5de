package models

import "time"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusSent    InvoiceStatus = "sent"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

// AllowedTaxRates are the statutory GST rates a line item may carry.
var AllowedTaxRates = []int{0, 5, 12, 18, 28}

// LineItem is one billable row on an invoice. Quantity, Rate and Amount
// travel as decimal strings; Amount is derived (quantity * rate, rounded
// to two places) and is never trusted from the client.
type LineItem struct {
	Description string `bson:"description" json:"description"`
	Quantity    string `bson:"quantity" json:"quantity"`
	Rate        string `bson:"rate" json:"rate"`
	TaxPercent  int    `bson:"taxPercent" json:"taxPercent"`
	Amount      string `bson:"amount" json:"amount"`
}

// Invoice is the persisted invoice document. Monetary fields are fixed
// two-decimal strings; all arithmetic happens in the billing service.
type Invoice struct {
	ID            string    `bson:"id" json:"id"`
	OwnerID       string    `bson:"ownerId" json:"ownerId"`
	InvoiceNumber string    `bson:"invoiceNumber" json:"invoiceNumber"` // unique, immutable after creation
	Date          time.Time `bson:"date" json:"date"`
	DueDate       time.Time `bson:"dueDate" json:"dueDate"`

	BusinessName    string `bson:"businessName" json:"businessName"`
	BusinessGST     string `bson:"businessGst,omitempty" json:"businessGST,omitempty"`
	BusinessAddress string `bson:"businessAddress,omitempty" json:"businessAddress,omitempty"`

	ClientName    string `bson:"clientName" json:"clientName"`
	ClientEmail   string `bson:"clientEmail,omitempty" json:"clientEmail,omitempty"`
	ClientPhone   string `bson:"clientPhone,omitempty" json:"clientPhone,omitempty"`
	ClientGST     string `bson:"clientGst,omitempty" json:"clientGST,omitempty"`
	ClientAddress string `bson:"clientAddress,omitempty" json:"clientAddress,omitempty"`

	Items []LineItem `bson:"items" json:"items"`

	Subtotal  string `bson:"subtotal" json:"subtotal"`
	TaxAmount string `bson:"taxAmount" json:"taxAmount"`
	Total     string `bson:"total" json:"total"`

	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
	Terms string `bson:"terms,omitempty" json:"terms,omitempty"`

	Status InvoiceStatus `bson:"status" json:"status"`

	PDFAssetID string `bson:"pdfAssetId,omitempty" json:"-"`
	PDFURL     string `bson:"pdfUrl,omitempty" json:"pdfUrl,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReminderPayload is the asynq task payload for an overdue payment reminder.
type ReminderPayload struct {
	InvoiceID     string `json:"invoiceId"`
	InvoiceNumber string `json:"invoiceNumber"`
	Recipient     string `json:"recipient"`
	AmountDue     string `json:"amountDue"`
	DaysOverdue   int    `json:"daysOverdue"`
}
