package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for card lifecycle events.
const (
	TopicCardCreated = "card.created"
	TopicCardDeleted = "card.deleted"
)

// CardCreatedEvent is published after a new Card is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicCardCreated).
type CardCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	CardID     uuid.UUID `json:"card_id"`
	Owner      string    `json:"owner"`
	Category   string    `json:"category"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CardDeletedEvent is published after a Card and its shares are removed.
type CardDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	CardID     uuid.UUID `json:"card_id"`
	Owner      string    `json:"owner"`
	OccurredAt time.Time `json:"occurred_at"`
}
