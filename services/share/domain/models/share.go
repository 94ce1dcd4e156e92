package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShareStatus is the lifecycle state of a share row. A rejected or revoked
// share is not retained; row absence is both the initial and terminal state.
type ShareStatus string

const (
	StatusPending  ShareStatus = "PENDING"
	StatusAccepted ShareStatus = "ACCEPTED"
)

// ParseShareStatus converts a raw string into a ShareStatus.
func ParseShareStatus(s string) (ShareStatus, error) {
	switch ShareStatus(s) {
	case StatusPending, StatusAccepted:
		return ShareStatus(s), nil
	}
	return "", fmt.Errorf("unknown share status %q", s)
}

// String returns the underlying string value.
func (s ShareStatus) String() string {
	return string(s)
}

// Decision is the recipient's verdict on a pending share.
type Decision string

const (
	DecisionAccept Decision = "ACCEPT"
	DecisionReject Decision = "REJECT"
)

// ParseDecision converts a raw string into a Decision.
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionAccept, DecisionReject:
		return Decision(s), nil
	}
	return "", fmt.Errorf("unknown decision %q", s)
}

// Share grants a recipient visibility into one card once accepted.
// CardID references the card's immutable surrogate ID; the external protocol
// addresses cards by their (owner, category, title) natural key, resolved to
// the ID at the service boundary. (CardID, Recipient) is unique.
type Share struct {
	ID        uuid.UUID
	CardID    uuid.UUID
	Recipient string // lower-cased username, never the card owner
	Status    ShareStatus
	CreatedAt time.Time
}

// NewShare constructs a PENDING share with generated ID and current timestamp.
func NewShare(cardID uuid.UUID, recipient string) *Share {
	return &Share{
		ID:        uuid.New(),
		CardID:    cardID,
		Recipient: recipient,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

// Invite is the read model returned by ListPending: the natural key of the
// card a pending share points at, as shown in the Invitations view.
type Invite struct {
	Owner    string
	Category string
	Title    string
}
