// Package text carries the shared length and cleanup rules for the
// free-text fields of a plan: the title and each session's activity note.
package text

import (
	"regexp"
	"unicode/utf8"
)

var spaceRun = regexp.MustCompile(`\s{2,}`)

// Validator applies one field's text rules. Lengths are in runes.
type Validator struct {
	MinLength      int
	MaxLength      int
	Required       bool
	CollapseSpaces bool // squeeze runs of whitespace to a single space
}

// NewTitleValidator returns the rules for the plan title.
func NewTitleValidator() Validator {
	return Validator{MinLength: 8, MaxLength: 80, Required: true, CollapseSpaces: true}
}

// NewActivityValidator returns the rules for a session's activity note.
func NewActivityValidator() Validator {
	return Validator{MinLength: 8, MaxLength: 800, Required: true}
}

// Clean normalizes raw input: optionally collapses whitespace runs, then
// truncates to MaxLength runes. It never rejects; invalid input is
// reported by IsValid instead.
func (v Validator) Clean(raw string) string {
	s := raw
	if v.CollapseSpaces {
		s = spaceRun.ReplaceAllString(s, " ")
	}
	if v.MaxLength > 0 && utf8.RuneCountInString(s) > v.MaxLength {
		runes := []rune(s)
		s = string(runes[:v.MaxLength])
	}
	return s
}

// Count is the rune count shown next to the field.
func (v Validator) Count(s string) int {
	return utf8.RuneCountInString(s)
}

// IsValid reports whether s satisfies the field's rules. An optional
// field may be empty.
func (v Validator) IsValid(s string) bool {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return !v.Required
	}
	if n < v.MinLength {
		return false
	}
	if v.MaxLength > 0 && n > v.MaxLength {
		return false
	}
	return true
}
