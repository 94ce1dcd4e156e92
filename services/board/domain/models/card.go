package models

import (
	"time"

	"github.com/google/uuid"
)

// Card is the task aggregate for this bounded context. Owner and Category are
// immutable after creation; the (Owner, Category, Title) triple is the natural
// key used by the external sharing protocol, while ID is the stable surrogate
// that share rows reference internally.
type Card struct {
	ID          uuid.UUID
	Owner       string // lower-cased username, immutable
	Category    Category
	Title       CardTitle
	Description string
	DueDate     *time.Time
	Color       string // hex RGB, e.g. "FFFFFF"
	URL         string
	Image       []byte
	Position    int // board order, ascending; 1 is topmost
	Status      CardStatus
	CreatedAt   time.Time
}

// NewCard constructs a valid Card aggregate with generated ID, NotDone status
// and current timestamp. Position is assigned by the repository on save.
func NewCard(owner string, category Category, title CardTitle) (*Card, error) {
	return &Card{
		ID:        uuid.New(),
		Owner:     owner,
		Category:  category,
		Title:     title,
		Color:     "FFFFFF",
		Status:    StatusNotDone,
		CreatedAt: time.Now().UTC(),
	}, nil
}
