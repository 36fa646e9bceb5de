package billing

import (
	"regexp"
	"strconv"
	"strings"

	"swiftbill/models"
)

// GSTIN shape: 2-digit state code, 10-character PAN segment, entity
// digit, letter, check character. Shape only; the issuing authority's
// checksum is not verified.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z0-9]{10}[0-9][A-Z][A-Z0-9]$`)

// ValidGSTIN reports whether s has the 15-character GST identifier shape.
func ValidGSTIN(s string) bool {
	return gstinPattern.MatchString(strings.ToUpper(s))
}

// ValidateInvoice checks an invoice's internal consistency before it is
// persisted or rendered. It returns field-scoped errors; an empty result
// means the invoice is valid.
func ValidateInvoice(inv *models.Invoice) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		errs = append(errs, FieldError{Field: "invoiceNumber", Message: "is required"})
	}
	if strings.TrimSpace(inv.BusinessName) == "" {
		errs = append(errs, FieldError{Field: "businessName", Message: "is required"})
	}
	if strings.TrimSpace(inv.ClientName) == "" {
		errs = append(errs, FieldError{Field: "clientName", Message: "is required"})
	}
	if inv.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "is required"})
	}
	if inv.DueDate.IsZero() {
		errs = append(errs, FieldError{Field: "dueDate", Message: "is required"})
	} else if !inv.Date.IsZero() && inv.DueDate.Before(inv.Date) {
		errs = append(errs, FieldError{Field: "dueDate", Message: "must not be before the invoice date"})
	}

	if inv.BusinessGST != "" && !ValidGSTIN(inv.BusinessGST) {
		errs = append(errs, FieldError{Field: "businessGST", Message: "is not a valid GST identifier"})
	}
	if inv.ClientGST != "" && !ValidGSTIN(inv.ClientGST) {
		errs = append(errs, FieldError{Field: "clientGST", Message: "is not a valid GST identifier"})
	}

	if len(inv.Items) == 0 {
		errs = append(errs, FieldError{Field: "items", Message: "at least one line item is required"})
	}
	for i, item := range inv.Items {
		errs = append(errs, validateItem(i, item)...)
	}

	return errs
}

func validateItem(idx int, item models.LineItem) []FieldError {
	var errs []FieldError
	field := func(name string) string {
		return "items[" + strconv.Itoa(idx) + "]." + name
	}

	if strings.TrimSpace(item.Description) == "" {
		errs = append(errs, FieldError{Field: field("description"), Message: "is required"})
	}
	if _, err := ParseDecimal("quantity", item.Quantity); err != nil {
		errs = append(errs, FieldError{Field: field("quantity"), Message: "must be a non-negative number"})
	}
	if _, err := ParseDecimal("rate", item.Rate); err != nil {
		errs = append(errs, FieldError{Field: field("rate"), Message: "must be a non-negative number"})
	}
	if !allowedTaxRate(item.TaxPercent) {
		errs = append(errs, FieldError{Field: field("taxPercent"), Message: "must be one of 0, 5, 12, 18 or 28"})
	}
	return errs
}
