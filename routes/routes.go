package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"swiftbill/handlers"
	"swiftbill/middleware"
	"swiftbill/utils"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/password", hb.UpdatePasswordHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterInvoiceRoutes registers invoice CRUD and lifecycle endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateInvoiceHandler)
		api.GET("", hb.ListInvoicesHandler)
		api.GET("/user/all", hb.ListInvoicesHandler)
		api.GET("/:id", hb.GetInvoiceHandler)
		api.PUT("/:id", hb.UpdateInvoiceHandler)
		api.PATCH("/:id/status", hb.UpdateStatusHandler)
		api.DELETE("/:id", hb.DeleteInvoiceHandler)
		api.GET("/:id/pdf", hb.DownloadInvoicePDFHandler)
	}
}

// RegisterEmailRoutes registers the invoice mailing endpoints.
func RegisterEmailRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/email")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/send-invoice", hb.SendInvoiceEmailHandler)
		api.POST("/payment-reminder", hb.SendPaymentReminderHandler)
		api.POST("/send-receipt", hb.SendReceiptHandler)
	}
}

// RegisterShareRoutes registers the invoice sharing endpoints.
func RegisterShareRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/share")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/whatsapp", hb.WhatsAppShareHandler)
	}
}

// RegisterBillingRoutes registers the plan upgrade endpoints.
func RegisterBillingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/billing")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/upgrade", hb.StartUpgradeHandler)
		api.POST("/confirm", hb.ConfirmUpgradeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.CheckedAt.IsZero() && !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "service": "swiftbill"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterEmailRoutes(r, hb)
	RegisterShareRoutes(r, hb)
	RegisterBillingRoutes(r, hb)
	RegisterHealthRoute(r)
}
