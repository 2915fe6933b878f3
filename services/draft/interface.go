package draft

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	planRepo "planbuilder/database/repository/plan"
	"planbuilder/models"
	"planbuilder/services/tasks"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// PlanDraftService manages the stateful plan-drafting flow: one draft per
// DraftID lives in Redis, every mutation rehydrates it, runs the
// constraint engine and writes it back. Submission persists the plan to
// Mongo and deletes the draft.
type PlanDraftService interface {
	CreateDraft(ctx context.Context, ownerID string) (*models.PlanSnapshot, error)
	GetSnapshot(ctx context.Context, ownerID, draftID string) (*models.PlanSnapshot, error)

	AppendSession(ctx context.Context, ownerID, draftID string) (*models.PlanSnapshot, error)
	RequestRemoval(ctx context.Context, ownerID, draftID string, sessionID int) (*models.PlanSnapshot, error)
	ResolveRemoval(ctx context.Context, ownerID, draftID string, confirmed bool) (*models.PlanSnapshot, error)
	SetSessionDate(ctx context.Context, ownerID, draftID string, sessionID int, date string) (*models.PlanSnapshot, error)
	SetSessionClock(ctx context.Context, ownerID, draftID string, sessionID int, field, hour, minute string) (*models.PlanSnapshot, error)
	ToggleSessionMeridiem(ctx context.Context, ownerID, draftID string, sessionID int, field string) (*models.PlanSnapshot, error)
	SetSessionActivity(ctx context.Context, ownerID, draftID string, sessionID int, activity string) (*models.PlanSnapshot, error)

	SetTitle(ctx context.Context, ownerID, draftID, title string) (*models.PlanSnapshot, error)
	SetCategories(ctx context.Context, ownerID, draftID string, categoryIDs []int) (*models.PlanSnapshot, error)
	SetCoverImage(ctx context.Context, ownerID, draftID, url string) (*models.PlanSnapshot, error)

	Submit(ctx context.Context, ownerID, draftID string) (*models.Plan, error)
	Cancel(ctx context.Context, ownerID, draftID string) error
}

// DefaultPlanDraftService implements PlanDraftService.
type DefaultPlanDraftService struct {
	Cache    *redis.Client
	Repo     planRepo.PlanRepository
	Expiry   *tasks.ExpiryScheduler // optional
	TTL      time.Duration
	WarnLead time.Duration
	Logger   *zap.Logger
}

// ErrDraftNotFound covers both an expired/unknown draft and a draft that
// belongs to a different owner; the two are indistinguishable on purpose.
var ErrDraftNotFound = errors.New("plan draft not found or expired")

var (
	ErrTooManyCategories = fmt.Errorf("a plan can carry at most %d categories", models.MaxCategorySelection)
	ErrUnknownCategory   = errors.New("unknown category id")
)

// NotSubmittableError reports why a draft cannot be submitted yet.
type NotSubmittableError struct {
	Problems []string
}

func (e *NotSubmittableError) Error() string {
	return "plan is not ready to submit: " + strings.Join(e.Problems, "; ")
}
