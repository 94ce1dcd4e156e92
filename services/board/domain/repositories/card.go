package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/taskdeck/services/board/domain/models"
)

// CardRepository is the persistence interface for the Card aggregate.
// The domain layer owns this interface; infrastructure implements it.
type CardRepository interface {
	// Save persists a new Card at the top of its board (position 1), shifting
	// the owner's existing cards in the same category down by one.
	Save(ctx context.Context, card *models.Card) error

	GetByID(ctx context.Context, owner string, id uuid.UUID) (*models.Card, error)

	// FindByKey resolves the (owner, category, title) natural key to a card.
	FindByKey(ctx context.Context, owner string, category models.Category, title string) (*models.Card, error)

	// FindByOwnerAndCategory retrieves the owner's cards for one category,
	// ordered by position ascending.
	FindByOwnerAndCategory(ctx context.Context, owner string, category models.Category) ([]*models.Card, error)

	// FindSharedWith retrieves cards in the given category that have an
	// ACCEPTED share addressed to recipient, in store order.
	FindSharedWith(ctx context.Context, recipient string, category models.Category) ([]*models.Card, error)

	// Update persists changes to an existing Card's mutable fields.
	Update(ctx context.Context, card *models.Card) error

	// Delete removes a card by ID scoped to the given owner.
	Delete(ctx context.Context, owner string, id uuid.UUID) error

	// Exists reports whether a card with the given ID exists for the given owner.
	Exists(ctx context.Context, owner string, id uuid.UUID) (bool, error)
}
