package plan

import (
	"context"
	"time"

	"planbuilder/models"
)

// Notifier receives transient user-facing messages (toasts). Fire and
// forget; implementations must not block.
type Notifier interface {
	Notify(message string)
}

// DatePicker is the date-selection collaborator. The engine supplies each
// session's selectable window; rendering, disabling out-of-range days and
// clearing an unconfirmed selection on close are the picker's problem.
type DatePicker interface {
	BindDateField(sessionID int, bounds models.DateBounds)
	UpdateBounds(sessionID int, bounds models.DateBounds)
	Unbind(sessionID int)
}

// Confirmer asks the user a yes/no question and resolves to the answer.
// Dismissal in any form resolves to false; it never fails the caller.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Engine owns one draft's ordered session list and keeps its constraints
// valid across edits: neighbor-bounded dates, start-before-end times with
// auto-correction, contiguous ordinals and the minimum-count rule.
//
// The draft is owned by exactly one caller at a time and every mutation
// runs to completion synchronously; the engine does no locking.
type Engine struct {
	Draft    *models.PlanDraft
	Picker   DatePicker // optional
	Notifier Notifier   // optional
	Now      func() time.Time

	onChange func()
}

// NewEngine wraps a draft. Picker and notifier may be nil.
func NewEngine(draft *models.PlanDraft, picker DatePicker, notifier Notifier) *Engine {
	return &Engine{Draft: draft, Picker: picker, Notifier: notifier}
}

// OnChange registers the single change-notification sink. It is invoked
// synchronously, at most once per successful mutation, and never for a
// rejected one.
func (e *Engine) OnChange(fn func()) {
	e.onChange = fn
}

func (e *Engine) fireChange() {
	if e.onChange != nil {
		e.onChange()
	}
}

func (e *Engine) notify(message string) {
	if e.Notifier != nil {
		e.Notifier.Notify(message)
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// find returns a pointer into the draft's session slice, or nil.
func (e *Engine) find(id int) *models.Session {
	for i := range e.Draft.Sessions {
		if e.Draft.Sessions[i].ID == id {
			return &e.Draft.Sessions[i]
		}
	}
	return nil
}
