package models

// DateLayout is the calendar-date format used throughout: local dates
// only, no timezone handling.
const DateLayout = "2006-01-02"

// Default time window for a freshly added session.
var (
	DefaultStartTime = TimeOfDay{Meridiem: MeridiemAM, Hour: 10, Minute: 0}
	DefaultEndTime   = TimeOfDay{Meridiem: MeridiemAM, Hour: 11, Minute: 0}
)

// DateBounds is the selectable date window for one session, derived from
// its neighbors. An empty MaxDate means unbounded.
type DateBounds struct {
	MinDate string `bson:"minDate" json:"minDate"`
	MaxDate string `bson:"maxDate,omitempty" json:"maxDate,omitempty"`
}

// Contains reports whether date falls inside the bounds. Lexicographic
// comparison is safe because dates use DateLayout.
func (b DateBounds) Contains(date string) bool {
	if date < b.MinDate {
		return false
	}
	if b.MaxDate != "" && date > b.MaxDate {
		return false
	}
	return true
}

// Session is one scheduled entry of a plan: a calendar date, a start/end
// time-of-day window and an activity note. The ID is assigned once and
// never reused; the Ordinal is the 1-based display position and is
// recomputed whenever the list changes. Bounds is the session's current
// selectable date window, kept on the session itself so no parallel
// per-feature registries are needed.
type Session struct {
	ID            int        `bson:"id" json:"id"`
	Ordinal       int        `bson:"ordinal" json:"ordinal"`
	Date          string     `bson:"date,omitempty" json:"date,omitempty"`
	StartTime     TimeOfDay  `bson:"startTime" json:"startTime"`
	EndTime       TimeOfDay  `bson:"endTime" json:"endTime"`
	Activity      string     `bson:"activity" json:"activity"`
	ActivityValid bool       `bson:"activityValid" json:"activityValid"`
	Bounds        DateBounds `bson:"bounds" json:"bounds"`
}

// NewSession returns a session with the default 10:00 AM - 11:00 AM
// window, no date and an empty activity note.
func NewSession(id, ordinal int) Session {
	return Session{
		ID:        id,
		Ordinal:   ordinal,
		StartTime: DefaultStartTime,
		EndTime:   DefaultEndTime,
	}
}

// SessionRecord is the serialized per-session shape used by snapshots and
// stored on submitted plans. Times are 24-hour "HH:MM"; Date is nil until
// the user has picked one.
type SessionRecord struct {
	ID            int        `bson:"id" json:"id"`
	Ordinal       int        `bson:"ordinal" json:"ordinal"`
	Date          *string    `bson:"date" json:"date"`
	StartTime     string     `bson:"startTime" json:"startTime"`
	EndTime       string     `bson:"endTime" json:"endTime"`
	Activity      string     `bson:"activity" json:"activity"`
	ActivityValid bool       `bson:"activityValid" json:"activityValid"`
	Bounds        DateBounds `bson:"bounds" json:"bounds"`
}

// Record converts the session to its serialized form.
func (s Session) Record() SessionRecord {
	rec := SessionRecord{
		ID:            s.ID,
		Ordinal:       s.Ordinal,
		StartTime:     s.StartTime.Clock(),
		EndTime:       s.EndTime.Clock(),
		Activity:      s.Activity,
		ActivityValid: s.ActivityValid,
		Bounds:        s.Bounds,
	}
	if s.Date != "" {
		date := s.Date
		rec.Date = &date
	}
	return rec
}
