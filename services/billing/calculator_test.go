package billing_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftbill/services/billing"
)

func item(qty, rate string, tax int) billing.Item {
	return billing.Item{
		Quantity:   dec.RequireFromString(qty),
		Rate:       dec.RequireFromString(rate),
		TaxPercent: tax,
	}
}

func TestComputeItemAmount(t *testing.T) {
	tests := []struct {
		name     string
		qty      string
		rate     string
		expected string
	}{
		{"whole numbers", "2", "500", "1000"},
		{"fractional rate", "3", "333.33", "999.99"},
		{"fractional quantity", "1.5", "99.99", "149.99"}, // 149.985 rounds half-up
		{"zero quantity", "0", "250", "0"},
		{"zero rate", "10", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := billing.ComputeItemAmount(dec.RequireFromString(tt.qty), dec.RequireFromString(tt.rate))
			require.NoError(t, err)
			assert.True(t, amount.Equal(dec.RequireFromString(tt.expected)),
				"got %s, want %s", amount.String(), tt.expected)
		})
	}
}

func TestComputeItemAmount_NegativeInput(t *testing.T) {
	_, err := billing.ComputeItemAmount(dec.NewFromInt(-1), dec.NewFromInt(5))
	var inputErr *billing.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "quantity", inputErr.Field)

	_, err = billing.ComputeItemAmount(dec.NewFromInt(1), dec.NewFromInt(-5))
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "rate", inputErr.Field)
}

func TestComputeTotals_MixedRates(t *testing.T) {
	// Two items, only the first taxed: amounts [1000.00, 1000.00],
	// subtotal 2000.00, tax 180.00, total 2180.00.
	items := []billing.Item{
		item("2", "500", 18),
		item("1", "1000", 0),
	}

	totals, err := billing.ComputeTotals(items)
	require.NoError(t, err)
	assert.Equal(t, "2000.00", billing.Money(totals.Subtotal))
	assert.Equal(t, "180.00", billing.Money(totals.TaxAmount))
	assert.Equal(t, "2180.00", billing.Money(totals.Total))
}

func TestComputeTotals_RoundsOncePerField(t *testing.T) {
	// 3 * 333.33 = 999.99; 12% of 999.99 = 119.9988, rounded once to 120.00.
	totals, err := billing.ComputeTotals([]billing.Item{item("3", "333.33", 12)})
	require.NoError(t, err)
	assert.Equal(t, "999.99", billing.Money(totals.Subtotal))
	assert.Equal(t, "120.00", billing.Money(totals.TaxAmount))
	assert.Equal(t, "1119.99", billing.Money(totals.Total))
}

func TestComputeTotals_Empty(t *testing.T) {
	_, err := billing.ComputeTotals(nil)
	var emptyErr *billing.EmptyInvoiceError
	require.ErrorAs(t, err, &emptyErr)
}

func TestComputeTotals_InvalidTaxRate(t *testing.T) {
	_, err := billing.ComputeTotals([]billing.Item{item("1", "100", 7)})
	var rateErr *billing.InvalidTaxRateError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 7, rateErr.Percent)
}

func TestComputeTotals_OrderInvariant(t *testing.T) {
	items := []billing.Item{
		item("2", "500", 18),
		item("1", "1000", 0),
		item("3", "333.33", 12),
		item("7", "19.99", 28),
	}
	reversed := make([]billing.Item, len(items))
	for i, it := range items {
		reversed[len(items)-1-i] = it
	}

	a, err := billing.ComputeTotals(items)
	require.NoError(t, err)
	b, err := billing.ComputeTotals(reversed)
	require.NoError(t, err)

	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.TaxAmount.Equal(b.TaxAmount))
	assert.True(t, a.Total.Equal(b.Total))
}

func TestComputeTotals_Deterministic(t *testing.T) {
	items := []billing.Item{item("3", "333.33", 12), item("2", "0.10", 28)}

	first, err := billing.ComputeTotals(items)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := billing.ComputeTotals(items)
		require.NoError(t, err)
		assert.True(t, first.Total.Equal(again.Total))
	}
}

func TestComputeTotals_NoDriftAcrossManyItems(t *testing.T) {
	// 0.10 at 28% per item would accumulate representation error under
	// binary floats; decimals must stay exact across hundreds of rows.
	items := make([]billing.Item, 300)
	for i := range items {
		items[i] = item("1", "0.10", 28)
	}

	totals, err := billing.ComputeTotals(items)
	require.NoError(t, err)
	assert.Equal(t, "30.00", billing.Money(totals.Subtotal))
	assert.Equal(t, "8.40", billing.Money(totals.TaxAmount))
	assert.Equal(t, "38.40", billing.Money(totals.Total))
}

func TestParseDecimal(t *testing.T) {
	d, err := billing.ParseDecimal("rate", "42.50")
	require.NoError(t, err)
	assert.Equal(t, "42.50", billing.Money(d))

	_, err = billing.ParseDecimal("rate", "not-a-number")
	var inputErr *billing.InvalidInputError
	require.ErrorAs(t, err, &inputErr)

	_, err = billing.ParseDecimal("rate", "-1")
	require.ErrorAs(t, err, &inputErr)
}
