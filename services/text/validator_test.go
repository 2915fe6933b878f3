package text

import (
	"strings"
	"testing"
)

func TestTitleClean(t *testing.T) {
	v := NewTitleValidator()
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "plain", raw: "Morning routine", expected: "Morning routine"},
		{name: "collapses space runs", raw: "Morning   routine\t\tplan", expected: "Morning routine plan"},
		{name: "truncates to max", raw: strings.Repeat("a", 100), expected: strings.Repeat("a", 80)},
		{name: "multibyte runes counted once", raw: strings.Repeat("가", 85), expected: strings.Repeat("가", 80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Clean(tt.raw); got != tt.expected {
				t.Fatalf("Clean(%q) = %q want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Validator
		input string
		valid bool
	}{
		{name: "title long enough", v: NewTitleValidator(), input: "Read ten pages", valid: true},
		{name: "title too short", v: NewTitleValidator(), input: "Read", valid: false},
		{name: "title empty", v: NewTitleValidator(), input: "", valid: false},
		{name: "activity at minimum", v: NewActivityValidator(), input: "12345678", valid: true},
		{name: "activity below minimum", v: NewActivityValidator(), input: "1234567", valid: false},
		{name: "activity over maximum", v: NewActivityValidator(), input: strings.Repeat("a", 801), valid: false},
		{name: "optional empty ok", v: Validator{MinLength: 3, MaxLength: 10}, input: "", valid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(tt.input); got != tt.valid {
				t.Fatalf("IsValid(%q) = %v want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestCountRunes(t *testing.T) {
	v := NewActivityValidator()
	if got := v.Count("가nada"); got != 5 {
		t.Fatalf("Count = %d want 5", got)
	}
}
