// Package billing holds the invoice calculator and validator: pure,
// side-effect-free computation of derived monetary fields, field
// validation and the status lifecycle. Every monetary value is a
// shopspring decimal; binary floating point is never used for money.
package billing

import (
	"github.com/shopspring/decimal"

	"swiftbill/models"
)

// Item is a line item in calculator form: already-parsed decimals plus
// the GST rate.
type Item struct {
	Quantity   decimal.Decimal
	Rate       decimal.Decimal
	TaxPercent int
}

// Totals are the three derived monetary fields of an invoice.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// round2 rounds half-up to two decimal places. Decimal.Round rounds
// half away from zero, which coincides with half-up on the non-negative
// money domain enforced here.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// allowedTaxRate reports whether percent is one of the statutory GST rates.
func allowedTaxRate(percent int) bool {
	for _, r := range models.AllowedTaxRates {
		if percent == r {
			return true
		}
	}
	return false
}

// ComputeItemAmount returns round2(quantity * rate). Both inputs must
// be non-negative.
func ComputeItemAmount(quantity, rate decimal.Decimal) (decimal.Decimal, error) {
	if quantity.IsNegative() {
		return decimal.Zero, NewInvalidInputError("quantity", quantity.String(), "must not be negative")
	}
	if rate.IsNegative() {
		return decimal.Zero, NewInvalidInputError("rate", rate.String(), "must not be negative")
	}
	return round2(quantity.Mul(rate)), nil
}

// ComputeTotals derives subtotal, tax amount and grand total for a set
// of line items. Tax is computed per item from its own rate, never from
// a blended rate across the subtotal. Sums accumulate at full precision
// and are rounded exactly once per output field.
func ComputeTotals(items []Item) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, &EmptyInvoiceError{}
	}

	subtotal := decimal.Zero
	taxAmount := decimal.Zero
	for _, it := range items {
		if !allowedTaxRate(it.TaxPercent) {
			return Totals{}, &InvalidTaxRateError{Percent: it.TaxPercent}
		}
		amount, err := ComputeItemAmount(it.Quantity, it.Rate)
		if err != nil {
			return Totals{}, err
		}
		subtotal = subtotal.Add(amount)
		taxAmount = taxAmount.Add(amount.Mul(decimal.NewFromInt(int64(it.TaxPercent))).Div(hundred))
	}

	t := Totals{
		Subtotal:  round2(subtotal),
		TaxAmount: round2(taxAmount),
	}
	t.Total = round2(t.Subtotal.Add(t.TaxAmount))
	return t, nil
}

// ParseDecimal parses a decimal string for the named field, rejecting
// malformed and negative values.
func ParseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, NewInvalidInputError(field, value, "not a valid number")
	}
	if d.IsNegative() {
		return decimal.Zero, NewInvalidInputError(field, value, "must not be negative")
	}
	return d, nil
}

// Money formats a decimal as a fixed two-decimal string, the wire and
// storage format for all monetary fields.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
