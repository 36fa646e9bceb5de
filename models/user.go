package models

import "time"

// Plan is the subscription tier of a user.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// User represents a registered SwiftBill account. Email is stored
// lowercased and unique. PasswordHash holds a bcrypt hash; the plaintext
// password must never be persisted or logged.
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Company      string `bson:"company,omitempty" json:"company,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`

	// Prefill fields for new invoices.
	BusinessName    string `bson:"businessName,omitempty" json:"businessName,omitempty"`
	BusinessGST     string `bson:"businessGst,omitempty" json:"businessGST,omitempty"`
	BusinessAddress string `bson:"businessAddress,omitempty" json:"businessAddress,omitempty"`

	DefaultTaxRate int  `bson:"defaultTaxRate" json:"defaultTaxRate"`
	Plan           Plan `bson:"plan" json:"plan"`
	InvoiceCount   int  `bson:"invoiceCount" json:"invoiceCount"`

	// SHA-256 of the currently issued bearer token; cleared on revoke.
	TokenHash string `bson:"tokenHash,omitempty" json:"-"`

	// Stripe PaymentIntent backing a pending pro upgrade.
	UpgradeIntentID string `bson:"upgradeIntentId,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
