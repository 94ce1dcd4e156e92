package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	boardmodels "github.com/ghuser/taskdeck/services/board/domain/models"
	"github.com/ghuser/taskdeck/services/share/domain/models"
)

// ShareRepository is the persistence interface for Share rows. The share
// service is the only component permitted to create, mutate or delete them.
//
// Concurrent decisions on the same row are resolved by the store's native
// atomicity: the conditional operations report whether a row was affected,
// and the losing caller observes ErrShareNotFound at the service layer.
type ShareRepository interface {
	// Insert persists a new PENDING share. Returns domain.ErrDuplicateShare
	// when a row for (card, recipient) already exists in either status.
	Insert(ctx context.Context, share *models.Share) error

	// FindPendingByRecipient returns the invitations addressed to recipient,
	// PENDING only, in insertion order.
	FindPendingByRecipient(ctx context.Context, recipient string) ([]models.Invite, error)

	// AcceptIfPending transitions PENDING→ACCEPTED. Returns false when no
	// PENDING row matched (already decided, revoked, or never existed).
	AcceptIfPending(ctx context.Context, recipient string, cardID uuid.UUID) (bool, error)

	// DeleteIfPending removes the PENDING row for (recipient, card).
	// Returns false when no PENDING row matched.
	DeleteIfPending(ctx context.Context, recipient string, cardID uuid.UUID) (bool, error)

	// Delete removes the share regardless of status. Returns false when no
	// row matched.
	Delete(ctx context.Context, recipient string, cardID uuid.UUID) (bool, error)

	// Exists reports whether any share (PENDING or ACCEPTED) exists for the pair.
	Exists(ctx context.Context, recipient string, cardID uuid.UUID) (bool, error)

	// DeleteByCard removes every share referencing the card. Zero rows is not
	// an error; used by the card deletion cascade.
	DeleteByCard(ctx context.Context, cardID uuid.UUID) error

	// DeleteByRecipient removes every share addressed to the recipient, in
	// either status. Zero rows is not an error; used by the account deletion
	// cascade.
	DeleteByRecipient(ctx context.Context, recipient string) error

	// ListRecipientsByCard returns all recipients sharing the card, in either
	// status. Set semantics.
	ListRecipientsByCard(ctx context.Context, cardID uuid.UUID) ([]string, error)

	// DeleteStalePending removes PENDING rows created before cutoff and
	// returns how many were swept. Used by the invitation sweep workflow.
	DeleteStalePending(ctx context.Context, cutoff time.Time) (int64, error)
}

// CardDirectory is the share service's view of the board context: resolve a
// natural key to a card and look cards up by ID. Implemented by an adapter
// over the board repository.
type CardDirectory interface {
	FindByKey(ctx context.Context, owner string, category boardmodels.Category, title string) (*boardmodels.Card, error)
}

// UserDirectory is the share service's view of the user context.
type UserDirectory interface {
	Exists(ctx context.Context, username string) (bool, error)
}
