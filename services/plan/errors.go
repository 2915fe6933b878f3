package plan

import "fmt"

// ConstraintError is the engine's error type. Every member is locally
// recoverable; the draft is never left in an inconsistent state.
type ConstraintError struct {
	Code    string
	Message string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrMinimumCount rejects removing the sole remaining session.
	ErrMinimumCount = &ConstraintError{Code: "minimumCount", Message: "at least one session is required"}
	// ErrSessionNotFound addresses an id no longer in the plan.
	ErrSessionNotFound = &ConstraintError{Code: "sessionNotFound", Message: "session is not part of this plan"}
	// ErrRemovalPending rejects a second removal request while one awaits
	// confirmation.
	ErrRemovalPending = &ConstraintError{Code: "removalPending", Message: "another removal is awaiting confirmation"}
	// ErrNoPendingRemoval rejects resolving when nothing is pending.
	ErrNoPendingRemoval = &ConstraintError{Code: "noPendingRemoval", Message: "no removal is awaiting confirmation"}
)

func newDateError(format string, args ...interface{}) *ConstraintError {
	return &ConstraintError{Code: "invalidDate", Message: fmt.Sprintf(format, args...)}
}

func newFieldError(format string, args ...interface{}) *ConstraintError {
	return &ConstraintError{Code: "invalidField", Message: fmt.Sprintf(format, args...)}
}

// User-facing texts for notices and prompts.
const (
	CorrectionNotice   = "The end time cannot be earlier than the start time."
	MinimumCountNotice = "At least one session is required."
	RemovalPrompt      = "Remove this session?"
)
