package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"planbuilder/config"
	"planbuilder/models"
	"planbuilder/services/notification"
	"planbuilder/services/tasks"
	"planbuilder/utils"

	"github.com/hibiken/asynq"
)

// InitExpiryWorker runs the async worker in the background. It handles
// draft-expiry warnings: if the draft is still sitting unsubmitted in
// Redis when the task fires, the owner is notified.
func InitExpiryWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeDraftExpiry, handleDraftExpiryTask(notifSvc))

	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleDraftExpiryTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.DraftExpiryPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}

		// Submitted or cancelled drafts are gone from Redis; nothing to warn about.
		exists, err := utils.GetDraftCacheClient().Exists(ctx, utils.DraftKey(payload.DraftID)).Result()
		if err != nil {
			return err
		}
		if exists == 0 {
			return nil
		}

		return notifSvc.NotifyDraftExpiring(ctx, payload.OwnerID, payload.DraftID, payload.ExpiresAt)
	}
}
