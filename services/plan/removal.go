package plan

import (
	"context"

	"planbuilder/models"
)

// RequestRemoval opens the two-step removal protocol for one session.
// It fails without touching the draft when the session is the sole
// remaining one (the minimum-count rule, also surfaced as a notice), when
// the id is unknown, or when another removal is already pending.
func (e *Engine) RequestRemoval(id int) (*models.RemovalRequest, error) {
	if e.find(id) == nil {
		return nil, ErrSessionNotFound
	}
	if len(e.Draft.Sessions) == 1 {
		e.notify(MinimumCountNotice)
		return nil, ErrMinimumCount
	}
	if pending := e.Draft.PendingRemoval; pending != nil && pending.State == models.RemovalPending {
		return nil, ErrRemovalPending
	}
	req := &models.RemovalRequest{
		SessionID:   id,
		State:       models.RemovalPending,
		Prompt:      RemovalPrompt,
		RequestedAt: e.now(),
	}
	e.Draft.PendingRemoval = req
	return req, nil
}

// ResolveRemoval settles the pending request. Confirmed performs the
// removal, renumbers the survivors and recascades their bounds; cancelled
// (dismiss, backdrop, escape all land here as false) leaves the draft
// untouched and fires no change notification. Reports whether a session
// was removed.
func (e *Engine) ResolveRemoval(confirmed bool) (bool, error) {
	req := e.Draft.PendingRemoval
	if req == nil || req.State != models.RemovalPending {
		return false, ErrNoPendingRemoval
	}
	e.Draft.PendingRemoval = nil
	if !confirmed {
		req.State = models.RemovalCancelled
		return false, nil
	}
	req.State = models.RemovalConfirmed
	if e.find(req.SessionID) == nil {
		return false, ErrSessionNotFound
	}
	e.remove(req.SessionID)
	return true, nil
}

// RemoveWithConfirm drives the protocol against a Confirmer capability in
// one call, for embedded use. A confirmer failure counts as a dismissal.
func (e *Engine) RemoveWithConfirm(ctx context.Context, id int, confirmer Confirmer) (bool, error) {
	req, err := e.RequestRemoval(id)
	if err != nil {
		return false, err
	}
	confirmed, err := confirmer.Confirm(ctx, req.Prompt)
	if err != nil {
		confirmed = false
	}
	return e.ResolveRemoval(confirmed)
}

// remove is unconditionally destructive; all gating happens before it.
func (e *Engine) remove(id int) {
	sessions := e.Draft.Sessions[:0]
	for _, s := range e.Draft.Sessions {
		if s.ID != id {
			sessions = append(sessions, s)
		}
	}
	e.Draft.Sessions = sessions
	if e.Picker != nil {
		e.Picker.Unbind(id)
	}
	e.renumber()
	e.RecalculateBounds()
	e.fireChange()
}
