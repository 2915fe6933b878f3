package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"planbuilder/models"
	"planbuilder/services/plan"
	"planbuilder/services/text"
	"planbuilder/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// noticeLog collects the transient notices a mutation produced so they
// can be returned in-band with the snapshot.
type noticeLog struct {
	notices []models.Notice
}

func (l *noticeLog) Notify(message string) {
	l.notices = append(l.notices, models.NewNotice(message))
}

// CreateDraft starts a new plan draft with a single default session and
// stores it in Redis. An expiry warning is scheduled shortly before the
// draft's TTL lapses.
func (s *DefaultPlanDraftService) CreateDraft(ctx context.Context, ownerID string) (*models.PlanSnapshot, error) {
	draft := &models.PlanDraft{
		DraftID:       uuid.New().String(),
		OwnerID:       ownerID,
		NextSessionID: 1,
		CreatedAt:     time.Now(),
	}
	notices := &noticeLog{}
	engine := plan.NewEngine(draft, nil, notices)
	engine.AppendSession()

	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}

	if s.Expiry != nil {
		expiresAt := draft.CreatedAt.Add(s.TTL)
		payload := models.DraftExpiryPayload{
			DraftID:   draft.DraftID,
			OwnerID:   ownerID,
			ExpiresAt: expiresAt,
		}
		if err := s.Expiry.Schedule(payload, expiresAt.Add(-s.WarnLead)); err != nil {
			// The draft is usable without the warning; log and move on.
			s.Logger.Warn("failed to schedule draft expiry warning",
				zap.String("draftId", draft.DraftID), zap.Error(err))
		}
	}

	return s.snapshot(draft, notices.notices), nil
}

// GetSnapshot returns the current view of a draft. Bounds are recomputed
// in memory so the "today" floor does not go stale, but a read never
// rewrites the draft.
func (s *DefaultPlanDraftService) GetSnapshot(ctx context.Context, ownerID, draftID string) (*models.PlanSnapshot, error) {
	draft, err := s.loadDraft(ctx, ownerID, draftID)
	if err != nil {
		return nil, err
	}
	plan.NewEngine(draft, nil, nil).RecalculateBounds()
	return s.snapshot(draft, nil), nil
}

// AppendSession adds a session with the default window to the end of the
// draft's sequence.
func (s *DefaultPlanDraftService) AppendSession(ctx context.Context, ownerID, draftID string) (*models.PlanSnapshot, error) {
	return s.mutate(ctx, ownerID, draftID, func(engine *plan.Engine, _ *models.PlanDraft) error {
		engine.AppendSession()
		return nil
	})
}

// RequestRemoval opens a pending removal for the given session.
func (s *DefaultPlanDraftService) RequestRemoval(ctx context.Context, ownerID, draftID string, sessionID int) (*models.PlanSnapshot, error) {
	return s.mutate(ctx, ownerID, draftID, func(engine *plan.Engine, _ *models.PlanDraft) error {
		_, err := engine.RequestRemoval(sessionID)
		return err
	})
}

// ResolveRemoval settles the pending removal with the owner's decision.
func (s *DefaultPlanDraftService) ResolveRemoval(ctx context.Context, ownerID, draftID string, confirmed bool) (*models.PlanSnapshot, error) {
	return s.mutate(ctx, ownerID, draftID, func(engine *plan.Engine, _ *models.PlanDraft) error {
		_, err := engine.ResolveRemoval(confirmed)
		return err
	})
}

// SetSessionDate assigns a session's calendar date.
func (s *DefaultPlanDraftService) SetSessionDate(ctx context.Context, ownerID, draftID string, sessionID int, date string) (*models.PlanSnapshot, error) {
	return s.mutate(ctx, ownerID, draftID, func(engine *plan.Engine, _ *models.PlanDraft) error {
		return engine.SetDate(sessionID, date)
	})
}

// SetSessionClock applies a raw hour/minute edit to one end of a
// session's time window.
func (s *DefaultPlanDraftService) SetSessionClock(ctx context.Context, ownerID, draftID string, sessionID int, field, hour, minute string) (*models.PlanSnapshot, error) {
	return s.mutate(ctx, ownerID, draftID, func(engine *plan.Engine, _ *models.PlanDraft) error {
		return engine.SetClock(sessionID, plan.TimeField(field), hour, minute)
	})
}

// ToggleSessionMeridiem flips AM/PM on one end of a session's window.
func (s *DefaultPlanDraftService) ToggleSessionMeridiem(ctx context.Context, ownerID, draftID string, sessionID int, field string) (*models.PlanSnapshot, error) {
	return s.mutate(ctx, ownerID, draftID, func(engine *plan.Engine, _ *models.PlanDraft) error {
		return engine.ToggleMeridiem(sessionID, plan.TimeField(field))
	})
}

// SetSessionActivity cleans and validates the activity note, then stores
// both the text and its validity on the session.
func (s *DefaultPlanDraftService) SetSessionActivity(ctx context.Context, ownerID, draftID string, sessionID int, activity string) (*models.PlanSnapshot, error) {
	return s.mutate(ctx, ownerID, draftID, func(engine *plan.Engine, _ *models.PlanDraft) error {
		validator := text.NewActivityValidator()
		cleaned := validator.Clean(activity)
		return engine.SetActivity(sessionID, cleaned, validator.IsValid(cleaned))
	})
}

// SetTitle cleans and validates the plan title.
func (s *DefaultPlanDraftService) SetTitle(ctx context.Context, ownerID, draftID, title string) (*models.PlanSnapshot, error) {
	return s.mutate(ctx, ownerID, draftID, func(_ *plan.Engine, draft *models.PlanDraft) error {
		validator := text.NewTitleValidator()
		draft.Title = validator.Clean(title)
		draft.TitleValid = validator.IsValid(draft.Title)
		return nil
	})
}

// SetCategories replaces the draft's category selection.
func (s *DefaultPlanDraftService) SetCategories(ctx context.Context, ownerID, draftID string, categoryIDs []int) (*models.PlanSnapshot, error) {
	return s.mutate(ctx, ownerID, draftID, func(_ *plan.Engine, draft *models.PlanDraft) error {
		if err := validateCategorySelection(categoryIDs); err != nil {
			return err
		}
		draft.CategoryIDs = categoryIDs
		return nil
	})
}

// validateCategorySelection enforces the catalog rules: at most two
// selections, every id known, no id listed twice. An empty selection is
// allowed while drafting; submission gating requires at least one.
func validateCategorySelection(categoryIDs []int) error {
	if len(categoryIDs) > models.MaxCategorySelection {
		return ErrTooManyCategories
	}
	seen := make(map[int]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		if _, ok := models.CategoryByID(id); !ok {
			return fmt.Errorf("%w: %d", ErrUnknownCategory, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: %d listed twice", ErrUnknownCategory, id)
		}
		seen[id] = true
	}
	return nil
}

// SetCoverImage stores the uploaded cover image URL on the draft.
func (s *DefaultPlanDraftService) SetCoverImage(ctx context.Context, ownerID, draftID, url string) (*models.PlanSnapshot, error) {
	return s.mutate(ctx, ownerID, draftID, func(_ *plan.Engine, draft *models.PlanDraft) error {
		draft.CoverImageURL = url
		return nil
	})
}

// Cancel deletes the draft outright.
func (s *DefaultPlanDraftService) Cancel(ctx context.Context, ownerID, draftID string) error {
	if _, err := s.loadDraft(ctx, ownerID, draftID); err != nil {
		return err
	}
	if err := s.Cache.Del(ctx, utils.DraftKey(draftID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel plan draft: %w", err)
	}
	return nil
}

// mutate is the shared edit path: load, run the engine, persist, snapshot.
// A rejected operation returns its error without writing anything back.
func (s *DefaultPlanDraftService) mutate(ctx context.Context, ownerID, draftID string, fn func(*plan.Engine, *models.PlanDraft) error) (*models.PlanSnapshot, error) {
	draft, err := s.loadDraft(ctx, ownerID, draftID)
	if err != nil {
		return nil, err
	}
	notices := &noticeLog{}
	engine := plan.NewEngine(draft, nil, notices)
	if err := fn(engine, draft); err != nil {
		return nil, err
	}
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return s.snapshot(draft, notices.notices), nil
}

func (s *DefaultPlanDraftService) loadDraft(ctx context.Context, ownerID, draftID string) (*models.PlanDraft, error) {
	data, err := s.Cache.Get(ctx, utils.DraftKey(draftID)).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan draft: %w", err)
	}
	var draft models.PlanDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse plan draft: %w", err)
	}
	if draft.OwnerID != ownerID {
		return nil, ErrDraftNotFound
	}
	return &draft, nil
}

func (s *DefaultPlanDraftService) saveDraft(ctx context.Context, draft *models.PlanDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal plan draft: %w", err)
	}
	if err := s.Cache.Set(ctx, utils.DraftKey(draft.DraftID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store plan draft: %w", err)
	}
	return nil
}

func (s *DefaultPlanDraftService) snapshot(draft *models.PlanDraft, notices []models.Notice) *models.PlanSnapshot {
	engine := plan.NewEngine(draft, nil, nil)
	return &models.PlanSnapshot{
		DraftID:        draft.DraftID,
		Title:          draft.Title,
		TitleValid:     draft.TitleValid,
		CategoryIDs:    draft.CategoryIDs,
		CoverImageURL:  draft.CoverImageURL,
		Sessions:       engine.Snapshot(),
		PendingRemoval: draft.PendingRemoval,
		Submittable:    len(SubmitProblems(draft)) == 0,
		Notices:        notices,
	}
}
