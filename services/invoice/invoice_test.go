package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceRepo "swiftbill/database/repository/invoice"
	"swiftbill/models"
	"swiftbill/services/billing"
	"swiftbill/services/invoice"
	"swiftbill/services/pdf"
	"swiftbill/services/user"
)

// fakeInvoiceRepo is an in-memory InvoiceRepository with the same
// uniqueness semantics as the Mongo unique index.
type fakeInvoiceRepo struct {
	byID map[string]models.Invoice
}

func newFakeRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{byID: make(map[string]models.Invoice)}
}

func (r *fakeInvoiceRepo) Create(inv *models.Invoice) error {
	for _, existing := range r.byID {
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return invoiceRepo.ErrDuplicateInvoiceNumber
		}
	}
	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	r.byID[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, invoiceRepo.ErrNotFound
	}
	out := inv
	return &out, nil
}

func (r *fakeInvoiceRepo) GetByOwner(ownerID string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range r.byID {
		if inv.OwnerID == ownerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(inv *models.Invoice) error {
	if _, ok := r.byID[inv.ID]; !ok {
		return invoiceRepo.ErrNotFound
	}
	inv.UpdatedAt = time.Now()
	r.byID[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) UpdateStatus(id string, status models.InvoiceStatus) error {
	inv, ok := r.byID[id]
	if !ok {
		return invoiceRepo.ErrNotFound
	}
	inv.Status = status
	r.byID[id] = inv
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return invoiceRepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeInvoiceRepo) FindDueBefore(status models.InvoiceStatus, t time.Time) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range r.byID {
		if inv.Status == status && inv.DueDate.Before(t) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) CountByOwner(ownerID string) (int64, error) {
	invs, _ := r.GetByOwner(ownerID)
	return int64(len(invs)), nil
}

// fakeUserService only implements what the invoice service touches.
type fakeUserService struct {
	allowCreate bool
	created     int
}

func (f *fakeUserService) CanCreateInvoice(string) (bool, error) { return f.allowCreate, nil }
func (f *fakeUserService) IncrementInvoiceCount(string) error    { f.created++; return nil }

// userServiceStub satisfies user.UserService for the invoice tests.
// Only the quota methods are expected to be called.
type userServiceStub struct {
	fake *fakeUserService
}

func (s userServiceStub) RegisterUser(user.RegistrationRequest) (*models.User, error) {
	panic("not expected")
}
func (s userServiceStub) AuthenticateUser(string, string) (*user.AuthResponse, error) {
	panic("not expected")
}
func (s userServiceStub) GetUserByID(string) (*models.User, error)    { panic("not expected") }
func (s userServiceStub) GetUserByEmail(string) (*models.User, error) { panic("not expected") }
func (s userServiceStub) UpdateProfile(string, user.ProfileUpdateRequest) (*models.User, error) {
	panic("not expected")
}
func (s userServiceStub) UpdatePassword(string, string, string) error { panic("not expected") }
func (s userServiceStub) DeleteUser(string) error                     { panic("not expected") }
func (s userServiceStub) RevokeAuthToken(string) error                { panic("not expected") }
func (s userServiceStub) SetPlan(string, models.Plan) error           { panic("not expected") }
func (s userServiceStub) SetUpgradeIntent(string, string) error       { panic("not expected") }

func (s userServiceStub) CanCreateInvoice(userID string) (bool, error) {
	return s.fake.CanCreateInvoice(userID)
}

func (s userServiceStub) IncrementInvoiceCount(userID string) error {
	return s.fake.IncrementInvoiceCount(userID)
}

func newService(repo invoiceRepo.InvoiceRepository, users *fakeUserService) invoice.InvoiceService {
	return &invoice.DefaultInvoiceService{
		Repo:  repo,
		Users: userServiceStub{users},
		PDF:   pdf.NewRenderer(),
	}
}

func draftRequest(number string) models.Invoice {
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return models.Invoice{
		InvoiceNumber: number,
		Date:          date,
		DueDate:       date.AddDate(0, 0, 30),
		BusinessName:  "Acme Traders",
		ClientName:    "Globex Pvt Ltd",
		Items: []models.LineItem{
			{Description: "Consulting", Quantity: "2", Rate: "500", TaxPercent: 18},
			{Description: "Hosting", Quantity: "1", Rate: "1000", TaxPercent: 0},
		},
	}
}

func TestCreateInvoice(t *testing.T) {
	repo := newFakeRepo()
	users := &fakeUserService{allowCreate: true}
	svc := newService(repo, users)

	inv, err := svc.CreateInvoice("owner-1", draftRequest("INV-001"))
	require.NoError(t, err)

	assert.Equal(t, models.StatusDraft, inv.Status)
	assert.Equal(t, "owner-1", inv.OwnerID)
	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, "1000.00", inv.Items[0].Amount)
	assert.Equal(t, "2000.00", inv.Subtotal)
	assert.Equal(t, "180.00", inv.TaxAmount)
	assert.Equal(t, "2180.00", inv.Total)
	assert.Equal(t, 1, users.created)
}

func TestCreateInvoice_IgnoresClientSuppliedTotals(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeUserService{allowCreate: true})

	req := draftRequest("INV-001")
	req.Items[0].Amount = "999999.99"
	req.Subtotal = "1.00"
	req.Total = "1.00"

	inv, err := svc.CreateInvoice("owner-1", req)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", inv.Items[0].Amount)
	assert.Equal(t, "2180.00", inv.Total)
}

func TestCreateInvoice_QuotaExceeded(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeUserService{allowCreate: false})

	_, err := svc.CreateInvoice("owner-1", draftRequest("INV-001"))
	assert.ErrorIs(t, err, invoice.ErrQuotaExceeded)
}

func TestCreateInvoice_DuplicateNumber(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeUserService{allowCreate: true})

	_, err := svc.CreateInvoice("owner-1", draftRequest("INV-001"))
	require.NoError(t, err)

	_, err = svc.CreateInvoice("owner-1", draftRequest("INV-001"))
	assert.ErrorIs(t, err, invoiceRepo.ErrDuplicateInvoiceNumber)
}

func TestCreateInvoice_ValidationFailure(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeUserService{allowCreate: true})

	req := draftRequest("INV-001")
	req.Items = nil

	_, err := svc.CreateInvoice("owner-1", req)
	var vErr *invoice.ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Fields)
}

func TestGetInvoice_OwnershipEnforced(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeUserService{allowCreate: true})

	created, err := svc.CreateInvoice("owner-1", draftRequest("INV-001"))
	require.NoError(t, err)

	_, err = svc.GetInvoice("owner-2", created.ID)
	assert.ErrorIs(t, err, invoice.ErrForbidden)
}

func TestUpdateDraft(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeUserService{allowCreate: true})

	created, err := svc.CreateInvoice("owner-1", draftRequest("INV-001"))
	require.NoError(t, err)

	req := draftRequest("IGNORED-NUMBER")
	req.Items = []models.LineItem{
		{Description: "Consulting", Quantity: "3", Rate: "333.33", TaxPercent: 12},
	}

	updated, err := svc.UpdateDraft("owner-1", created.ID, req)
	require.NoError(t, err)
	// Number is immutable; totals follow the new items.
	assert.Equal(t, "INV-001", updated.InvoiceNumber)
	assert.Equal(t, "999.99", updated.Subtotal)
	assert.Equal(t, "120.00", updated.TaxAmount)
	assert.Equal(t, "1119.99", updated.Total)
}

func TestUpdateDraft_RejectedOnceSent(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeUserService{allowCreate: true})

	created, err := svc.CreateInvoice("owner-1", draftRequest("INV-001"))
	require.NoError(t, err)
	_, err = svc.TransitionStatus("owner-1", created.ID, models.StatusSent)
	require.NoError(t, err)

	_, err = svc.UpdateDraft("owner-1", created.ID, draftRequest("INV-001"))
	assert.ErrorIs(t, err, invoice.ErrNotDraft)
}

func TestTransitionStatus_IllegalMoveSurfacesBillingError(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeUserService{allowCreate: true})

	created, err := svc.CreateInvoice("owner-1", draftRequest("INV-001"))
	require.NoError(t, err)

	_, err = svc.TransitionStatus("owner-1", created.ID, models.StatusPaid)
	var trErr *billing.StatusTransitionError
	require.ErrorAs(t, err, &trErr)

	// The stored invoice is unchanged by the failed transition.
	got, err := svc.GetInvoice("owner-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, got.Status)
}

func TestMarkOverdue(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeUserService{allowCreate: true})

	past := draftRequest("INV-OLD")
	past.DueDate = time.Now().AddDate(0, 0, -5)
	past.Date = past.DueDate.AddDate(0, 0, -30)
	created, err := svc.CreateInvoice("owner-1", past)
	require.NoError(t, err)
	_, err = svc.TransitionStatus("owner-1", created.ID, models.StatusSent)
	require.NoError(t, err)

	// A draft invoice past due must not be touched by the sweep.
	stillDraft := draftRequest("INV-DRAFT")
	stillDraft.DueDate = time.Now().AddDate(0, 0, -5)
	stillDraft.Date = stillDraft.DueDate.AddDate(0, 0, -30)
	draft, err := svc.CreateInvoice("owner-1", stillDraft)
	require.NoError(t, err)

	marked, err := svc.MarkOverdue(time.Now())
	require.NoError(t, err)
	require.Len(t, marked, 1)
	assert.Equal(t, "INV-OLD", marked[0].InvoiceNumber)
	assert.Equal(t, models.StatusOverdue, marked[0].Status)

	got, err := svc.GetInvoice("owner-1", draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, got.Status)
}

func TestDeleteInvoice(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeUserService{allowCreate: true})

	created, err := svc.CreateInvoice("owner-1", draftRequest("INV-001"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInvoice("owner-1", created.ID))
	_, err = svc.GetInvoice("owner-1", created.ID)
	assert.ErrorIs(t, err, invoiceRepo.ErrNotFound)
}
