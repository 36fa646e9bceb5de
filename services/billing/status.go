package billing

import "swiftbill/models"

// allowedTransitions encodes the forward-only invoice lifecycle:
// draft -> sent -> {paid | overdue}; overdue may still settle to paid;
// paid is terminal.
var allowedTransitions = map[models.InvoiceStatus][]models.InvoiceStatus{
	models.StatusDraft:   {models.StatusSent},
	models.StatusSent:    {models.StatusPaid, models.StatusOverdue},
	models.StatusOverdue: {models.StatusPaid},
	models.StatusPaid:    {},
}

// CanTransition reports whether the lifecycle permits moving from one
// status to another.
func CanTransition(from, to models.InvoiceStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionStatus returns a copy of the invoice advanced to newStatus.
// An illegal move fails with StatusTransitionError and the input invoice
// is untouched.
func TransitionStatus(inv models.Invoice, newStatus models.InvoiceStatus) (models.Invoice, error) {
	if !CanTransition(inv.Status, newStatus) {
		return inv, &StatusTransitionError{From: inv.Status, To: newStatus}
	}
	inv.Status = newStatus
	return inv, nil
}
