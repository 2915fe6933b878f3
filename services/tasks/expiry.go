package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"planbuilder/config"
	"planbuilder/models"

	"github.com/hibiken/asynq"
)

const TypeDraftExpiry = "draft:expiry"

// NewDraftExpiryTask builds the warning task scheduled shortly before a
// draft's Redis TTL lapses.
func NewDraftExpiryTask(payload models.DraftExpiryPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDraftExpiry, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ExpiryScheduler enqueues draft-expiry warnings.
type ExpiryScheduler struct {
	Client *asynq.Client
}

// NewExpiryScheduler connects an asynq client to the queue Redis DB.
func NewExpiryScheduler() *ExpiryScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &ExpiryScheduler{Client: client}
}

// Schedule enqueues one warning for the given draft. The worker checks
// whether the draft still exists before notifying.
func (s *ExpiryScheduler) Schedule(payload models.DraftExpiryPayload, fireAt time.Time) error {
	task, opts, err := NewDraftExpiryTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build draft expiry task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue draft expiry task: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *ExpiryScheduler) Close() error {
	return s.Client.Close()
}
