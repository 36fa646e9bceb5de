package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"

	"swiftbill/config"
	"swiftbill/cron"
	"swiftbill/database"
	invoiceRepoPkg "swiftbill/database/repository/invoice"
	userRepoPkg "swiftbill/database/repository/user"
	"swiftbill/handlers"
	"swiftbill/routes"
	invoiceSvc "swiftbill/services/invoice"
	"swiftbill/services/mail"
	"swiftbill/services/pdf"
	"swiftbill/services/storage"
	"swiftbill/services/subscription"
	"swiftbill/services/user"
	"swiftbill/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary unavailable, invoices will render PDFs on demand only: %v", err)
		storageService = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	invoiceService := &invoiceSvc.DefaultInvoiceService{
		Repo:    invoiceRepo,
		Users:   userService,
		PDF:     pdf.NewRenderer(),
		Storage: storageService,
	}
	subscriptionService := &subscription.DefaultSubscriptionService{
		Users: userService,
	}
	mailer := mail.NewSMTPMailer()

	userHandler := &handlers.UserHandler{UserService: userService}
	invoiceHandler := &handlers.InvoiceHandler{InvoiceService: invoiceService}
	emailHandler := &handlers.EmailHandler{InvoiceService: invoiceService, Mailer: mailer}
	shareHandler := &handlers.ShareHandler{
		InvoiceService: invoiceService,
		Send:           utils.SendWhatsAppMessage,
	}
	subscriptionHandler := &handlers.SubscriptionHandler{SubscriptionService: subscriptionService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetProfileHandler:       userHandler.GetProfileHandler,
		UpdateProfileHandler:    userHandler.UpdateProfileHandler,
		UpdatePasswordHandler:   userHandler.UpdatePasswordHandler,
		DeleteAccountHandler:    userHandler.DeleteAccountHandler,
		LogoutHandler:           userHandler.LogoutHandler,

		// Invoice endpoints.
		CreateInvoiceHandler:      invoiceHandler.CreateInvoiceHandler,
		ListInvoicesHandler:       invoiceHandler.ListInvoicesHandler,
		GetInvoiceHandler:         invoiceHandler.GetInvoiceHandler,
		UpdateInvoiceHandler:      invoiceHandler.UpdateInvoiceHandler,
		UpdateStatusHandler:       invoiceHandler.UpdateStatusHandler,
		DeleteInvoiceHandler:      invoiceHandler.DeleteInvoiceHandler,
		DownloadInvoicePDFHandler: invoiceHandler.DownloadInvoicePDFHandler,

		// Email endpoints.
		SendInvoiceEmailHandler:    emailHandler.SendInvoiceEmailHandler,
		SendPaymentReminderHandler: emailHandler.SendPaymentReminderHandler,
		SendReceiptHandler:         emailHandler.SendReceiptHandler,

		// Sharing endpoints.
		WhatsAppShareHandler: shareHandler.WhatsAppShareHandler,

		// Billing endpoints.
		StartUpgradeHandler:   subscriptionHandler.StartUpgradeHandler,
		ConfirmUpgradeHandler: subscriptionHandler.ConfirmUpgradeHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background work: overdue sweep, reminder worker, health monitor.
	cron.StartOverdueSweep(invoiceService)
	cron.InitReminderWorker(invoiceRepo, mailer)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
