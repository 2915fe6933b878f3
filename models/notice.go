package models

import "time"

// NoticeDisplayWindow is how long clients keep a transient notice on
// screen before dismissing it.
const NoticeDisplayWindow = 3 * time.Second

// Notice is a transient, fire-and-forget user-facing message (a toast).
// It never represents a failed mutation.
type Notice struct {
	Message   string    `json:"message"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewNotice stamps a message with its display window.
func NewNotice(message string) Notice {
	now := time.Now()
	return Notice{
		Message:   message,
		IssuedAt:  now,
		ExpiresAt: now.Add(NoticeDisplayWindow),
	}
}
