package cron

import (
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"swiftbill/config"
	"swiftbill/models"
	"swiftbill/services/invoice"
	"swiftbill/services/tasks"
	"swiftbill/utils"
)

// StartOverdueSweep flips sent invoices past their due date to overdue
// once an hour and queues a payment reminder for each one.
func StartOverdueSweep(invoiceSvc invoice.InvoiceService) {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		sweep(invoiceSvc, client)
		for range ticker.C {
			sweep(invoiceSvc, client)
		}
	}()
}

func sweep(invoiceSvc invoice.InvoiceService, client *asynq.Client) {
	logger := utils.GetLogger()

	now := time.Now()
	marked, err := invoiceSvc.MarkOverdue(now)
	if err != nil {
		logger.Error("Overdue sweep failed", zap.Error(err))
		return
	}
	if len(marked) == 0 {
		return
	}
	logger.Info("Marked invoices overdue", zap.Int("count", len(marked)))

	for _, inv := range marked {
		if inv.ClientEmail == "" {
			continue
		}

		daysOverdue := int(now.Sub(inv.DueDate).Hours() / 24)
		if daysOverdue < 1 {
			daysOverdue = 1
		}

		payload := models.ReminderPayload{
			InvoiceID:     inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			Recipient:     inv.ClientEmail,
			AmountDue:     inv.Total,
			DaysOverdue:   daysOverdue,
		}
		task, opts, err := tasks.NewReminderTask(payload, now)
		if err != nil {
			logger.Error("Failed to build reminder task",
				zap.String("invoiceId", inv.ID), zap.Error(err))
			continue
		}
		if _, err := client.Enqueue(task, opts...); err != nil {
			logger.Error("Failed to enqueue reminder",
				zap.String("invoiceId", inv.ID), zap.Error(err))
		}
	}
}
