package draft

import (
	"context"
	"fmt"

	"planbuilder/models"
	"planbuilder/services/plan"
	"planbuilder/utils"
)

// Submit finalizes a draft: every submission gate must pass, the plan is
// persisted, and the draft is deleted from Redis. The stored sessions use
// the serialized snapshot shape with 24-hour times.
func (s *DefaultPlanDraftService) Submit(ctx context.Context, ownerID, draftID string) (*models.Plan, error) {
	draft, err := s.loadDraft(ctx, ownerID, draftID)
	if err != nil {
		return nil, err
	}
	if problems := SubmitProblems(draft); len(problems) > 0 {
		return nil, &NotSubmittableError{Problems: problems}
	}

	stored := models.Plan{
		ID:            draft.DraftID,
		OwnerID:       draft.OwnerID,
		Title:         draft.Title,
		CategoryIDs:   draft.CategoryIDs,
		CoverImageURL: draft.CoverImageURL,
		Sessions:      plan.NewEngine(draft, nil, nil).Snapshot(),
	}
	if _, err := s.Repo.Create(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	// The draft is spent; a failed delete only means it lingers until TTL.
	if err := s.Cache.Del(ctx, utils.DraftKey(draftID)).Err(); err != nil {
		s.Logger.Warn("failed to delete submitted draft: " + err.Error())
	}

	saved, err := s.Repo.GetByID(ctx, stored.ID)
	if err != nil {
		return &stored, nil
	}
	return saved, nil
}
