package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoiceRepo "swiftbill/database/repository/invoice"
	"swiftbill/models"
)

// shareInvoiceStub serves a single invoice for the share endpoint.
type shareInvoiceStub struct {
	inv models.Invoice
}

func (s *shareInvoiceStub) GetInvoice(ownerID, id string) (*models.Invoice, error) {
	if id != s.inv.ID || ownerID != s.inv.OwnerID {
		return nil, invoiceRepo.ErrNotFound
	}
	out := s.inv
	return &out, nil
}

func (s *shareInvoiceStub) CreateInvoice(string, models.Invoice) (*models.Invoice, error) {
	panic("not expected")
}
func (s *shareInvoiceStub) ListInvoices(string) ([]models.Invoice, error) { panic("not expected") }
func (s *shareInvoiceStub) UpdateDraft(string, string, models.Invoice) (*models.Invoice, error) {
	panic("not expected")
}
func (s *shareInvoiceStub) TransitionStatus(string, string, models.InvoiceStatus) (*models.Invoice, error) {
	panic("not expected")
}
func (s *shareInvoiceStub) DeleteInvoice(string, string) error { panic("not expected") }
func (s *shareInvoiceStub) RenderPDF(string, string) ([]byte, *models.Invoice, error) {
	panic("not expected")
}
func (s *shareInvoiceStub) MarkOverdue(time.Time) ([]models.Invoice, error) {
	panic("not expected")
}

func shareRouter(h *ShareHandler, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/share/whatsapp", func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		h.WhatsAppShareHandler(c)
	})
	return r
}

func postShare(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/share/whatsapp", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sharedInvoice() models.Invoice {
	return models.Invoice{
		ID:            "inv-1",
		OwnerID:       "owner-1",
		InvoiceNumber: "INV-042",
		ClientPhone:   "919876543210",
		Total:         "2180.00",
		PDFURL:        "https://cdn.example.com/invoice-INV-042.pdf",
	}
}

func TestWhatsAppShareDispatchesMessage(t *testing.T) {
	var sentPhone, sentMessage string
	h := &ShareHandler{
		InvoiceService: &shareInvoiceStub{inv: sharedInvoice()},
		Send: func(phone, message string) error {
			sentPhone = phone
			sentMessage = message
			return nil
		},
	}
	r := shareRouter(h, "owner-1")

	w := postShare(t, r, gin.H{"invoiceId": "inv-1"})
	require.Equal(t, http.StatusOK, w.Code)

	// The message went out to the invoice's client number.
	assert.Equal(t, "919876543210", sentPhone)
	assert.Contains(t, sentMessage, "INV-042")
	assert.Contains(t, sentMessage, "2180.00")
	assert.Contains(t, sentMessage, "https://cdn.example.com/invoice-INV-042.pdf")

	var resp struct {
		ShareURL string `json:"shareUrl"`
		Message  string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.ShareURL, "https://wa.me/919876543210")
	assert.Equal(t, sentMessage, resp.Message)
}

func TestWhatsAppShareExplicitPhoneWins(t *testing.T) {
	var sentPhone string
	h := &ShareHandler{
		InvoiceService: &shareInvoiceStub{inv: sharedInvoice()},
		Send: func(phone, message string) error {
			sentPhone = phone
			return nil
		},
	}
	r := shareRouter(h, "owner-1")

	w := postShare(t, r, gin.H{"invoiceId": "inv-1", "phone": "911234567890"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "911234567890", sentPhone)
}

func TestWhatsAppShareNoPhone(t *testing.T) {
	inv := sharedInvoice()
	inv.ClientPhone = ""
	dispatched := false
	h := &ShareHandler{
		InvoiceService: &shareInvoiceStub{inv: inv},
		Send: func(string, string) error {
			dispatched = true
			return nil
		},
	}
	r := shareRouter(h, "owner-1")

	w := postShare(t, r, gin.H{"invoiceId": "inv-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, dispatched)
}

func TestWhatsAppShareForeignInvoice(t *testing.T) {
	h := &ShareHandler{
		InvoiceService: &shareInvoiceStub{inv: sharedInvoice()},
		Send:           func(string, string) error { return nil },
	}
	r := shareRouter(h, "owner-2")

	w := postShare(t, r, gin.H{"invoiceId": "inv-1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
