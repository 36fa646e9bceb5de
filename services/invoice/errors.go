package invoice

import (
	"errors"
	"fmt"

	"swiftbill/services/billing"
)

// ErrForbidden is returned when a caller touches an invoice they do not own.
var ErrForbidden = errors.New("invoice belongs to another user")

// ErrQuotaExceeded is returned when a free-plan user hits the invoice limit.
var ErrQuotaExceeded = errors.New("free plan invoice limit reached, upgrade to pro for unlimited invoices")

// ErrNotDraft is returned when items or fields are mutated after the
// invoice left draft. A new invoice must be created instead.
var ErrNotDraft = errors.New("only draft invoices can be modified")

// ValidationFailedError aggregates the field-scoped validation failures
// of one request.
type ValidationFailedError struct {
	Fields []billing.FieldError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("invoice validation failed on %d field(s)", len(e.Fields))
}
