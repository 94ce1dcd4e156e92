package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for share lifecycle events. There is no real-time push to
// recipients; consumers use these for cache maintenance and audit logging,
// and the Invitations view still polls ListPending.
const (
	TopicShareRequested = "share.requested"
	TopicShareAccepted  = "share.accepted"
	TopicShareRevoked   = "share.revoked"
)

// ShareRequestedEvent is published after a PENDING share is persisted.
type ShareRequestedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ShareID    uuid.UUID `json:"share_id"`
	CardID     uuid.UUID `json:"card_id"`
	Owner      string    `json:"owner"`
	Recipient  string    `json:"recipient"`
	Category   string    `json:"category"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ShareAcceptedEvent is published after a PENDING share transitions to ACCEPTED.
type ShareAcceptedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	CardID     uuid.UUID `json:"card_id"`
	Owner      string    `json:"owner"`
	Recipient  string    `json:"recipient"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ShareRevokedEvent is published after a share row is deleted by rejection
// or revocation (not by the card-deletion cascade).
type ShareRevokedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	CardID     uuid.UUID `json:"card_id"`
	Recipient  string    `json:"recipient"`
	OccurredAt time.Time `json:"occurred_at"`
}
