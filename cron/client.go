package cron

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"turfhub/models"

	"github.com/hibiken/asynq"
)

var (
	clientOnce  sync.Once
	asynqClient *asynq.Client
)

func getClient() *asynq.Client {
	clientOnce.Do(func() {
		asynqClient = asynq.NewClient(redisOpts())
	})
	return asynqClient
}

// EnqueueBookingReminder schedules a reminder push at the given time. Times
// already in the past are delivered immediately.
func EnqueueBookingReminder(payload models.ReminderPayload, at time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, data)
	var opts []asynq.Option
	if at.After(time.Now()) {
		opts = append(opts, asynq.ProcessAt(at))
	}
	if _, err := getClient().Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
