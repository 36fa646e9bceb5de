package handlers

import (
	"github.com/gin-gonic/gin"

	userRepoPkg "swiftbill/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	UpdatePasswordHandler   gin.HandlerFunc
	DeleteAccountHandler    gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc

	// Invoice endpoints
	CreateInvoiceHandler      gin.HandlerFunc
	ListInvoicesHandler       gin.HandlerFunc
	GetInvoiceHandler         gin.HandlerFunc
	UpdateInvoiceHandler      gin.HandlerFunc
	UpdateStatusHandler       gin.HandlerFunc
	DeleteInvoiceHandler      gin.HandlerFunc
	DownloadInvoicePDFHandler gin.HandlerFunc

	// Email endpoints
	SendInvoiceEmailHandler    gin.HandlerFunc
	SendPaymentReminderHandler gin.HandlerFunc
	SendReceiptHandler         gin.HandlerFunc

	// Sharing endpoints
	WhatsAppShareHandler gin.HandlerFunc

	// Billing endpoints
	StartUpgradeHandler   gin.HandlerFunc
	ConfirmUpgradeHandler gin.HandlerFunc
}
