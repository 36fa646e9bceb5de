package billing

import (
	"fmt"

	"swiftbill/models"
)

// InvalidInputError signals malformed numeric input (negative or unparseable).
type InvalidInputError struct {
	Field   string
	Value   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid input on %s: %s (value=%s)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("invalid input on %s: %s", e.Field, e.Message)
}

// NewInvalidInputError creates a new invalid input error.
func NewInvalidInputError(field, value, message string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Message: message}
}

// EmptyInvoiceError signals an invoice with zero line items.
type EmptyInvoiceError struct{}

func (e *EmptyInvoiceError) Error() string {
	return "invoice has no line items"
}

// InvalidTaxRateError signals a tax percent outside the statutory GST rates.
type InvalidTaxRateError struct {
	Percent int
}

func (e *InvalidTaxRateError) Error() string {
	return fmt.Sprintf("tax percent %d is not an allowed GST rate %v", e.Percent, models.AllowedTaxRates)
}

// StatusTransitionError signals an illegal lifecycle move. The invoice
// is left unchanged by the failed transition.
type StatusTransitionError struct {
	From models.InvoiceStatus
	To   models.InvoiceStatus
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s -> %s", e.From, e.To)
}

// FieldError is a single field-scoped validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
