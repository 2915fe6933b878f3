package models

import "fmt"

// Meridiem is the AM/PM designator paired with a 1-12 display hour.
type Meridiem string

const (
	MeridiemAM Meridiem = "AM"
	MeridiemPM Meridiem = "PM"
)

// Toggle returns the opposite designator.
func (m Meridiem) Toggle() Meridiem {
	if m == MeridiemAM {
		return MeridiemPM
	}
	return MeridiemAM
}

// Valid reports whether m is one of the two known designators.
func (m Meridiem) Valid() bool {
	return m == MeridiemAM || m == MeridiemPM
}

// TimeOfDay is a wall-clock time the way the user edits it: meridiem,
// 1-12 display hour and minute. It is replaced wholesale on edit, never
// mutated field by field from outside the engine.
type TimeOfDay struct {
	Meridiem Meridiem `bson:"meridiem" json:"meridiem"`
	Hour     int      `bson:"hour" json:"hour"`
	Minute   int      `bson:"minute" json:"minute"`
}

// MinutesOfDay converts to minutes since midnight. 12 AM maps to 0 and
// 12 PM to 720, so the result is always in [0, 1439].
func (t TimeOfDay) MinutesOfDay() int {
	hour24 := t.Hour % 12
	if t.Meridiem == MeridiemPM {
		hour24 += 12
	}
	return hour24*60 + t.Minute
}

// Clock renders the zero-padded 24-hour "HH:MM" form used in snapshots.
func (t TimeOfDay) Clock() string {
	total := t.MinutesOfDay()
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
