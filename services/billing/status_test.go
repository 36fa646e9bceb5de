package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftbill/models"
	"swiftbill/services/billing"
)

func TestTransitionStatus_ForwardPath(t *testing.T) {
	inv := models.Invoice{InvoiceNumber: "INV-001", Status: models.StatusDraft}

	inv, err := billing.TransitionStatus(inv, models.StatusSent)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSent, inv.Status)

	inv, err = billing.TransitionStatus(inv, models.StatusOverdue)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOverdue, inv.Status)

	inv, err = billing.TransitionStatus(inv, models.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, inv.Status)
}

func TestTransitionStatus_DraftCannotSkipToPaid(t *testing.T) {
	inv := models.Invoice{Status: models.StatusDraft}

	got, err := billing.TransitionStatus(inv, models.StatusPaid)
	var trErr *billing.StatusTransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, models.StatusDraft, trErr.From)
	assert.Equal(t, models.StatusPaid, trErr.To)
	// Failed transition leaves the invoice unchanged.
	assert.Equal(t, models.StatusDraft, got.Status)
}

func TestTransitionStatus_PaidIsTerminal(t *testing.T) {
	inv := models.Invoice{Status: models.StatusPaid}

	for _, next := range []models.InvoiceStatus{
		models.StatusDraft, models.StatusSent, models.StatusOverdue, models.StatusPaid,
	} {
		_, err := billing.TransitionStatus(inv, next)
		var trErr *billing.StatusTransitionError
		require.ErrorAs(t, err, &trErr, "paid -> %s must fail", next)
	}
}

func TestTransitionStatus_OverdueNeverRevertsBackward(t *testing.T) {
	inv := models.Invoice{Status: models.StatusOverdue}

	for _, next := range []models.InvoiceStatus{models.StatusDraft, models.StatusSent} {
		_, err := billing.TransitionStatus(inv, next)
		var trErr *billing.StatusTransitionError
		require.ErrorAs(t, err, &trErr, "overdue -> %s must fail", next)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.InvoiceStatus
		allowed  bool
	}{
		{models.StatusDraft, models.StatusSent, true},
		{models.StatusSent, models.StatusPaid, true},
		{models.StatusSent, models.StatusOverdue, true},
		{models.StatusOverdue, models.StatusPaid, true},
		{models.StatusDraft, models.StatusPaid, false},
		{models.StatusDraft, models.StatusOverdue, false},
		{models.StatusSent, models.StatusDraft, false},
		{models.StatusPaid, models.StatusSent, false},
		{models.StatusOverdue, models.StatusSent, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, billing.CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
