package plan

import (
	"strconv"
	"strings"

	"planbuilder/models"
)

// TimeField addresses one end of a session's time window.
type TimeField string

const (
	FieldStart TimeField = "start"
	FieldEnd   TimeField = "end"
)

// FilterNumeric strips every non-digit character from raw input.
func FilterNumeric(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeClockField turns a raw hour or minute field into a value in
// [min, max]: non-digits are stripped first, empty input yields min, and
// the parsed value is clamped. Hours use (0, 12), minutes (0, 59); hour 0
// is admitted and treated like 12 on conversion.
func NormalizeClockField(raw string, min, max int) int {
	digits := FilterNumeric(raw)
	if digits == "" {
		return min
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return min
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}

// CorrectEnd is the replacement end time substituted when ordering is
// violated: one hour after start, carrying start's minute. Reaching 12
// crosses noon or midnight, so the meridiem flips; past 12 the hour also
// wraps to 1. A PM start therefore corrects across midnight without
// advancing the calendar date.
func CorrectEnd(start models.TimeOfDay) models.TimeOfDay {
	end := models.TimeOfDay{
		Meridiem: start.Meridiem,
		Hour:     start.Hour + 1,
		Minute:   start.Minute,
	}
	if end.Hour >= 12 {
		if end.Hour > 12 {
			end.Hour = 1
		}
		end.Meridiem = end.Meridiem.Toggle()
	}
	return end
}

// ValidateAndCorrect checks that end follows start within the day. A valid
// end is returned untouched; otherwise the corrected end and true.
func ValidateAndCorrect(start, end models.TimeOfDay) (models.TimeOfDay, bool) {
	if end.MinutesOfDay() > start.MinutesOfDay() {
		return end, false
	}
	return CorrectEnd(start), true
}

// SetClock applies a raw hour/minute edit to one end of the session's
// window, then settles the ordering invariant. The mutation succeeds even
// when the end time had to be corrected.
func (e *Engine) SetClock(id int, field TimeField, rawHour, rawMinute string) error {
	s := e.find(id)
	if s == nil {
		return ErrSessionNotFound
	}
	t := models.TimeOfDay{
		Hour:   NormalizeClockField(rawHour, 0, 12),
		Minute: NormalizeClockField(rawMinute, 0, 59),
	}
	switch field {
	case FieldStart:
		t.Meridiem = s.StartTime.Meridiem
		s.StartTime = t
	case FieldEnd:
		t.Meridiem = s.EndTime.Meridiem
		s.EndTime = t
	default:
		return newFieldError("unknown time field %q", field)
	}
	e.settleTimes(s)
	e.fireChange()
	return nil
}

// ToggleMeridiem flips AM/PM on one end of the window. Toggling the start
// drags the end's meridiem along with it; toggling the end affects only
// the end. Either way the ordering invariant is re-settled.
func (e *Engine) ToggleMeridiem(id int, field TimeField) error {
	s := e.find(id)
	if s == nil {
		return ErrSessionNotFound
	}
	switch field {
	case FieldStart:
		s.StartTime.Meridiem = s.StartTime.Meridiem.Toggle()
		s.EndTime.Meridiem = s.StartTime.Meridiem
	case FieldEnd:
		s.EndTime.Meridiem = s.EndTime.Meridiem.Toggle()
	default:
		return newFieldError("unknown time field %q", field)
	}
	e.settleTimes(s)
	e.fireChange()
	return nil
}

// settleTimes re-runs ordering validation and applies the auto-correction
// with a notice when the end no longer follows the start.
func (e *Engine) settleTimes(s *models.Session) {
	end, corrected := ValidateAndCorrect(s.StartTime, s.EndTime)
	if corrected {
		s.EndTime = end
		e.notify(CorrectionNotice)
	}
}
