package plan

import (
	"time"

	"planbuilder/models"
)

// RecalculateBounds recomputes every session's selectable date window
// from its immediate neighbors and republishes it to the picker. The
// window is [previous date + 1 day, next date - 1 day]; an unset neighbor
// date falls back to today on the low side and to unbounded on the high
// side. A date set anywhere can tighten or loosen any other session's
// window, so the whole sequence is always recomputed. Running it twice
// with no intervening mutation yields identical bounds.
//
// The cascade publishes bounds only. It never clears a stored date that a
// neighbor's later edit has pushed out of range; the picker's own
// clear-on-close behavior is the corrective path for that.
func (e *Engine) RecalculateBounds() {
	today := e.now().Format(models.DateLayout)
	sessions := e.Draft.Sessions
	for i := range sessions {
		bounds := models.DateBounds{MinDate: today}
		if i > 0 && sessions[i-1].Date != "" {
			bounds.MinDate = addDays(sessions[i-1].Date, 1)
		}
		if i < len(sessions)-1 && sessions[i+1].Date != "" {
			bounds.MaxDate = addDays(sessions[i+1].Date, -1)
		}
		sessions[i].Bounds = bounds
		if e.Picker != nil {
			e.Picker.UpdateBounds(sessions[i].ID, bounds)
		}
	}
}

// addDays shifts a DateLayout date by n calendar days. Unparseable input
// is returned as-is; stored dates are validated on the way in.
func addDays(date string, n int) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(models.DateLayout)
}
