package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"swiftbill/config"
	invoiceRepo "swiftbill/database/repository/invoice"
	"swiftbill/models"
	"swiftbill/services/mail"
	"swiftbill/services/tasks"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(repo invoiceRepo.InvoiceRepository, mailer mail.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(repo, mailer))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(repo invoiceRepo.InvoiceRepository, mailer mail.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		inv, err := repo.GetByID(p.InvoiceID)
		if err != nil {
			log.Printf("[ReminderHandler] Invoice %s not found, dropping reminder: %v", p.InvoiceID, err)
			return nil
		}

		// Paid in the meantime: the reminder is stale.
		if inv.Status != models.StatusOverdue {
			log.Printf("[ReminderHandler] Invoice %s is %s, skipping reminder", inv.InvoiceNumber, inv.Status)
			return nil
		}

		recipient := p.Recipient
		if recipient == "" {
			recipient = inv.ClientEmail
		}
		if recipient == "" {
			log.Printf("[ReminderHandler] Invoice %s has no client email, dropping reminder", inv.InvoiceNumber)
			return nil
		}

		log.Printf("[ReminderHandler] Sending payment reminder for invoice %s (%d days overdue)", inv.InvoiceNumber, p.DaysOverdue)

		if err := mailer.SendPaymentReminder(recipient, inv, p.DaysOverdue); err != nil {
			log.Printf("[ReminderHandler] Failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
