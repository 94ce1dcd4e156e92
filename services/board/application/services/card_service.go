package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/taskdeck/pkg/cache"
	boarddomain "github.com/ghuser/taskdeck/services/board/domain"
	"github.com/ghuser/taskdeck/services/board/domain/models"
	"github.com/ghuser/taskdeck/services/board/domain/repositories"
	domainsvcs "github.com/ghuser/taskdeck/services/board/domain/services"
)

// ShareRevoker is the card service's view of the share registry: the cascade
// hook that removes every share referencing a card before it is deleted.
type ShareRevoker interface {
	RevokeAll(ctx context.Context, cardID uuid.UUID) error
}

// CardInput carries the mutable fields for create/update. Title is ignored
// on create (passed separately) and optional on update, where empty keeps
// the current title.
type CardInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Color       string
	URL         string
	Image       []byte
}

// CardService orchestrates creation, mutation and deletion of Cards.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from the Redis card cache when available.
type CardService struct {
	repo   repositories.CardRepository
	shares ShareRevoker
	cache  *pkgcache.CardCache
}

// NewCardService returns a CardService wired with the given repository,
// share registry hook and cache.
func NewCardService(repo repositories.CardRepository, shares ShareRevoker, cardCache *pkgcache.CardCache) *CardService {
	return &CardService{repo: repo, shares: shares, cache: cardCache}
}

// Create validates and persists a Card. The repository publishes CardCreatedEvent.
func (s *CardService) Create(ctx context.Context, owner string, category models.Category, title string, in CardInput) (*models.Card, error) {
	cardTitle, err := models.NewCardTitle(title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", boarddomain.ErrInvalidCardTitle, err)
	}

	card, err := models.NewCard(owner, category, cardTitle)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	card.Description = in.Description
	card.DueDate = in.DueDate
	if in.Color != "" {
		card.Color = in.Color
	}
	card.URL = in.URL
	card.Image = in.Image

	if err := domainsvcs.ValidateCardForCreation(card); err != nil {
		return nil, fmt.Errorf("%w: %w", boarddomain.ErrInvalidCardTitle, err)
	}

	if err := s.repo.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("save card: %w", err)
	}

	return card, nil
}

// GetByID retrieves a Card using a read-through cache pattern:
//  1. Check the Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *CardService) GetByID(ctx context.Context, owner string, id uuid.UUID) (*models.Card, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, owner, id); err == nil {
			return cachedToCard(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			_ = err // cache miss or error, fall through to Postgres
		}
	}

	card, err := s.repo.GetByID(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), CachedFromCard(card))
		}()
	}

	return card, nil
}

// Update replaces a card's mutable fields. Owner, category and position are
// immutable here. Renaming is safe for existing shares, which reference the
// card's surrogate ID rather than its title; the new title must still be
// unique within (owner, category).
func (s *CardService) Update(ctx context.Context, owner string, id uuid.UUID, in CardInput) (*models.Card, error) {
	card, err := s.repo.GetByID(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	if in.Title != "" {
		title, err := models.NewCardTitle(in.Title)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", boarddomain.ErrInvalidCardTitle, err)
		}
		card.Title = title
	}
	card.Description = in.Description
	card.DueDate = in.DueDate
	if in.Color != "" {
		card.Color = in.Color
	}
	card.URL = in.URL
	card.Image = in.Image

	if err := domainsvcs.ValidateCardForCreation(card); err != nil {
		return nil, fmt.Errorf("%w: %w", boarddomain.ErrInvalidCardTitle, err)
	}

	if err := s.repo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), owner, id)
	}
	return card, nil
}

// SetStatus flips a card's completion state.
func (s *CardService) SetStatus(ctx context.Context, owner string, id uuid.UUID, status models.CardStatus) error {
	card, err := s.repo.GetByID(ctx, owner, id)
	if err != nil {
		return fmt.Errorf("get card: %w", err)
	}
	card.Status = status
	if err := s.repo.Update(ctx, card); err != nil {
		return fmt.Errorf("update card: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), owner, id)
	}
	return nil
}

// Delete removes a card by ID scoped to the given owner, revoking every share
// referencing it first. A revocation failure aborts the whole delete so no
// share row is ever left pointing at a missing card; the repository-level
// FK cascade is only a backstop.
// Returns ErrCardNotFound if no matching card exists.
func (s *CardService) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, owner, id)
	if err != nil {
		return fmt.Errorf("check card: %w", err)
	}
	if !exists {
		return boarddomain.ErrCardNotFound
	}

	if err := s.shares.RevokeAll(ctx, id); err != nil {
		return fmt.Errorf("revoke shares before delete: %w", err)
	}

	if err := s.repo.Delete(ctx, owner, id); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), owner, id)
	}
	return nil
}

// DeleteAllByOwner removes every card the owner has, across all categories,
// running the share cascade per card. Invoked by the account deletion flow.
func (s *CardService) DeleteAllByOwner(ctx context.Context, owner string) error {
	for _, category := range models.Categories() {
		cards, err := s.repo.FindByOwnerAndCategory(ctx, owner, category)
		if err != nil {
			return fmt.Errorf("list cards: %w", err)
		}
		for _, card := range cards {
			if err := s.Delete(ctx, owner, card.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func cachedToCard(c *pkgcache.CachedCard) *models.Card {
	return &models.Card{
		ID:          c.ID,
		Owner:       c.Owner,
		Category:    models.Category(c.Category),
		Title:       models.CardTitle(c.Title),
		Description: c.Description,
		DueDate:     c.DueDate,
		Color:       c.Color,
		URL:         c.URL,
		Image:       c.Image,
		Position:    c.Position,
		Status:      models.CardStatus(c.Status),
		CreatedAt:   c.CreatedAt,
	}
}

// CachedFromCard builds the Redis read model for a card. The worker uses it
// to warm the cache from card.created events.
func CachedFromCard(card *models.Card) *pkgcache.CachedCard {
	return &pkgcache.CachedCard{
		ID:          card.ID,
		Owner:       card.Owner,
		Category:    card.Category.String(),
		Title:       card.Title.String(),
		Description: card.Description,
		DueDate:     card.DueDate,
		Color:       card.Color,
		URL:         card.URL,
		Image:       card.Image,
		Position:    card.Position,
		Status:      card.Status.String(),
		CreatedAt:   card.CreatedAt,
	}
}
