package notification

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// NotificationService delivers out-of-band messages to a draft's owner.
// In-form toasts are not routed through here; they travel in-band with
// the mutation response.
type NotificationService interface {
	NotifyDraftExpiring(ctx context.Context, ownerID, draftID string, expiresAt time.Time) error
}

// LogNotificationService is the default delivery channel: guest owners
// have no push tokens, so expiry warnings land in the service log where
// the surrounding platform can pick them up.
type LogNotificationService struct {
	Logger *zap.Logger
}

func (s *LogNotificationService) NotifyDraftExpiring(ctx context.Context, ownerID, draftID string, expiresAt time.Time) error {
	s.Logger.Info("plan draft is about to expire",
		zap.String("ownerId", ownerID),
		zap.String("draftId", draftID),
		zap.Time("expiresAt", expiresAt),
	)
	return nil
}
