package plan

import (
	"testing"

	"planbuilder/models"
)

func TestNormalizeClockField(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		min, max int
		expected int
	}{
		{name: "empty yields min", raw: "", min: 0, max: 12, expected: 0},
		{name: "plain value", raw: "7", min: 0, max: 12, expected: 7},
		{name: "clamped to max hour", raw: "25", min: 0, max: 12, expected: 12},
		{name: "clamped to max minute", raw: "99", min: 0, max: 59, expected: 59},
		{name: "non-digits stripped", raw: "1a2", min: 0, max: 59, expected: 12},
		{name: "only non-digits yields min", raw: "ab", min: 0, max: 59, expected: 0},
		{name: "zero hour admitted", raw: "0", min: 0, max: 12, expected: 0},
		{name: "leading zeros", raw: "09", min: 0, max: 59, expected: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeClockField(tt.raw, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("NormalizeClockField(%q, %d, %d) = %d want %d", tt.raw, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		name     string
		time     models.TimeOfDay
		expected int
	}{
		{name: "midnight", time: models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 12}, expected: 0},
		{name: "noon", time: models.TimeOfDay{Meridiem: models.MeridiemPM, Hour: 12}, expected: 720},
		{name: "morning", time: models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 10, Minute: 30}, expected: 630},
		{name: "evening", time: models.TimeOfDay{Meridiem: models.MeridiemPM, Hour: 11, Minute: 59}, expected: 1439},
		{name: "zero hour behaves like twelve", time: models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 0, Minute: 5}, expected: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.time.MinutesOfDay()
			if got != tt.expected {
				t.Fatalf("MinutesOfDay() = %d want %d", got, tt.expected)
			}
		})
	}
}

func TestValidateAndCorrect(t *testing.T) {
	tests := []struct {
		name      string
		start     models.TimeOfDay
		end       models.TimeOfDay
		corrected bool
		expected  models.TimeOfDay
	}{
		{
			name:     "valid window untouched",
			start:    models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 10},
			end:      models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 11},
			expected: models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 11},
		},
		{
			name:      "end before start",
			start:     models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 11},
			end:       models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 10},
			corrected: true,
			expected:  models.TimeOfDay{Meridiem: models.MeridiemPM, Hour: 12},
		},
		{
			name:      "equal times corrected",
			start:     models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 9, Minute: 15},
			end:       models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 9, Minute: 15},
			corrected: true,
			expected:  models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 10, Minute: 15},
		},
		{
			name:      "start minute carried onto corrected end",
			start:     models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 11, Minute: 45},
			end:       models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 11, Minute: 10},
			corrected: true,
			expected:  models.TimeOfDay{Meridiem: models.MeridiemPM, Hour: 12, Minute: 45},
		},
		{
			name:      "noon overflow flips to PM one",
			start:     models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 12, Minute: 30},
			end:       models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 12, Minute: 0},
			corrected: true,
			expected:  models.TimeOfDay{Meridiem: models.MeridiemPM, Hour: 1, Minute: 30},
		},
		{
			name:      "midnight crossing keeps the date",
			start:     models.TimeOfDay{Meridiem: models.MeridiemPM, Hour: 12},
			end:       models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 11},
			corrected: true,
			expected:  models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, corrected := ValidateAndCorrect(tt.start, tt.end)
			if corrected != tt.corrected {
				t.Fatalf("corrected = %v want %v", corrected, tt.corrected)
			}
			if end != tt.expected {
				t.Fatalf("end = %+v want %+v", end, tt.expected)
			}
			if corrected && end.MinutesOfDay() <= tt.start.MinutesOfDay() {
				// PM overflow legitimately crosses midnight; that is the
				// only case where the corrected end wraps behind the start.
				if tt.start.Meridiem != models.MeridiemPM {
					t.Fatalf("corrected end %+v does not follow start %+v", end, tt.start)
				}
			}
		})
	}
}

func TestClockRendering(t *testing.T) {
	tests := []struct {
		time     models.TimeOfDay
		expected string
	}{
		{models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 10}, "10:00"},
		{models.TimeOfDay{Meridiem: models.MeridiemPM, Hour: 1, Minute: 5}, "13:05"},
		{models.TimeOfDay{Meridiem: models.MeridiemAM, Hour: 12, Minute: 0}, "00:00"},
		{models.TimeOfDay{Meridiem: models.MeridiemPM, Hour: 12, Minute: 30}, "12:30"},
	}
	for _, tt := range tests {
		if got := tt.time.Clock(); got != tt.expected {
			t.Errorf("Clock(%+v) = %q want %q", tt.time, got, tt.expected)
		}
	}
}
