package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/taskdeck/services/board/domain/models"
	"github.com/ghuser/taskdeck/services/board/domain/repositories"
)

// BoardService computes the effective card list a user sees for a category:
// the union of their own cards and cards accepted-shared to them.
type BoardService struct {
	repo repositories.CardRepository
}

// NewBoardService returns a BoardService wired with the given repository.
func NewBoardService(repo repositories.CardRepository) *BoardService {
	return &BoardService{repo: repo}
}

// EffectiveCards returns the user's own cards for the category in position
// order, followed by cards reachable via an ACCEPTED share, in store order.
// A card already present by identity is not appended twice. A shared card
// whose row was deleted simply never appears; the delete flow revokes its
// shares in the same operation.
func (s *BoardService) EffectiveCards(ctx context.Context, user string, category models.Category) ([]*models.Card, error) {
	owned, err := s.repo.FindByOwnerAndCategory(ctx, user, category)
	if err != nil {
		return nil, fmt.Errorf("list owned cards: %w", err)
	}

	shared, err := s.repo.FindSharedWith(ctx, user, category)
	if err != nil {
		return nil, fmt.Errorf("list shared cards: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(owned))
	for _, card := range owned {
		seen[card.ID] = struct{}{}
	}

	effective := owned
	for _, card := range shared {
		if _, dup := seen[card.ID]; dup {
			continue
		}
		seen[card.ID] = struct{}{}
		effective = append(effective, card)
	}
	return effective, nil
}
