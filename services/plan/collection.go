package plan

import (
	"time"

	"planbuilder/models"
)

// AppendSession creates a session with the default window, assigns the
// next stable id, renumbers the sequence and recomputes every session's
// date bounds.
func (e *Engine) AppendSession() models.Session {
	if e.Draft.NextSessionID < 1 {
		e.Draft.NextSessionID = 1
	}
	id := e.Draft.NextSessionID
	e.Draft.NextSessionID++

	s := models.NewSession(id, len(e.Draft.Sessions)+1)
	e.Draft.Sessions = append(e.Draft.Sessions, s)
	if e.Picker != nil {
		e.Picker.BindDateField(id, models.DateBounds{MinDate: e.now().Format(models.DateLayout)})
	}
	e.renumber()
	e.RecalculateBounds()
	e.fireChange()
	return *e.find(id)
}

// Get returns a copy of the session with the given id.
func (e *Engine) Get(id int) (models.Session, bool) {
	if s := e.find(id); s != nil {
		return *s, true
	}
	return models.Session{}, false
}

// Len is the current number of sessions.
func (e *Engine) Len() int {
	return len(e.Draft.Sessions)
}

// Snapshot returns the ordered serialized view of every session.
func (e *Engine) Snapshot() []models.SessionRecord {
	records := make([]models.SessionRecord, 0, len(e.Draft.Sessions))
	for _, s := range e.Draft.Sessions {
		records = append(records, s.Record())
	}
	return records
}

// SetDate assigns a session's calendar date. The date must parse and fall
// inside the session's current bounds; a later neighbor edit never
// retro-clears a stored date, so this check is the only gate.
func (e *Engine) SetDate(id int, date string) error {
	s := e.find(id)
	if s == nil {
		return ErrSessionNotFound
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return newDateError("date must be in %s form", models.DateLayout)
	}
	e.RecalculateBounds()
	if !s.Bounds.Contains(date) {
		return newDateError("date %s is outside the selectable range", date)
	}
	s.Date = date
	e.RecalculateBounds()
	e.fireChange()
	return nil
}

// SetActivity stores the activity note and its validity as computed by
// the text validator. Activity edits gate submission but do not count as
// schedule changes, so no change notification fires.
func (e *Engine) SetActivity(id int, text string, valid bool) error {
	s := e.find(id)
	if s == nil {
		return ErrSessionNotFound
	}
	s.Activity = text
	s.ActivityValid = valid
	return nil
}

// renumber restores the ordinal invariant: exactly 1..len, in order.
func (e *Engine) renumber() {
	for i := range e.Draft.Sessions {
		e.Draft.Sessions[i].Ordinal = i + 1
	}
}
