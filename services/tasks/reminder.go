package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"swiftbill/models"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds the asynq task that emails a payment reminder
// for an overdue invoice.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
	}

	return task, opts, nil
}
