package models

import "time"

// RemovalState tracks the two-step removal protocol: a removal request is
// pending until the owner confirms or cancels it.
type RemovalState string

const (
	RemovalPending   RemovalState = "pending"
	RemovalConfirmed RemovalState = "confirmed"
	RemovalCancelled RemovalState = "cancelled"
)

// RemovalRequest is an in-flight request to remove one session. Only one
// may be pending per draft at a time.
type RemovalRequest struct {
	SessionID   int          `bson:"sessionId" json:"sessionId"`
	State       RemovalState `bson:"state" json:"state"`
	Prompt      string       `bson:"prompt" json:"prompt"`
	RequestedAt time.Time    `bson:"requestedAt" json:"requestedAt"`
}

// PlanDraft holds an in-progress plan between edits. It lives in Redis as
// JSON, keyed by DraftID, and is rehydrated for every mutation.
type PlanDraft struct {
	DraftID        string          `json:"draftId"`
	OwnerID        string          `json:"ownerId"`
	Title          string          `json:"title"`
	TitleValid     bool            `json:"titleValid"`
	CategoryIDs    []int           `json:"categoryIds"`
	CoverImageURL  string          `json:"coverImageUrl,omitempty"`
	Sessions       []Session       `json:"sessions"`
	NextSessionID  int             `json:"nextSessionId"`
	PendingRemoval *RemovalRequest `json:"pendingRemoval,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// PlanSnapshot is the external view of a draft returned after every read
// or mutation: the serialized sessions with their current date bounds,
// any transient notices the mutation produced, and whether the draft is
// complete enough to submit.
type PlanSnapshot struct {
	DraftID        string          `json:"draftId"`
	Title          string          `json:"title"`
	TitleValid     bool            `json:"titleValid"`
	CategoryIDs    []int           `json:"categoryIds"`
	CoverImageURL  string          `json:"coverImageUrl,omitempty"`
	Sessions       []SessionRecord `json:"sessions"`
	PendingRemoval *RemovalRequest `json:"pendingRemoval,omitempty"`
	Submittable    bool            `json:"submittable"`
	Notices        []Notice        `json:"notices,omitempty"`
}

// Plan is a submitted, persisted plan document.
type Plan struct {
	ID            string          `bson:"id" json:"id"`
	OwnerID       string          `bson:"ownerId" json:"ownerId"`
	Title         string          `bson:"title" json:"title"`
	CategoryIDs   []int           `bson:"categoryIds" json:"categoryIds"`
	CoverImageURL string          `bson:"coverImageUrl,omitempty" json:"coverImageUrl,omitempty"`
	Sessions      []SessionRecord `bson:"sessions" json:"sessions"`
	CreatedAt     time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// DraftExpiryPayload is the asynq task payload for the expiry warning.
type DraftExpiryPayload struct {
	DraftID   string    `json:"draftId"`
	OwnerID   string    `json:"ownerId"`
	ExpiresAt time.Time `json:"expiresAt"`
}
