package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/taskdeck/pkg/database"
	"github.com/ghuser/taskdeck/pkg/events"
	boarddomain "github.com/ghuser/taskdeck/services/board/domain"
	domainevents "github.com/ghuser/taskdeck/services/board/domain/events"
	"github.com/ghuser/taskdeck/services/board/domain/models"
)

const cardColumns = `id, owner, category, title, description, due_date, color, url, image, position, status, created_at`

// CardRepository implements repositories.CardRepository against PostgreSQL.
type CardRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewCardRepository returns a CardRepository backed by the given connection
// pool and event bus. A nil bus disables event publishing (tests).
func NewCardRepository(db *database.Database, bus *events.EventBus) *CardRepository {
	return &CardRepository{db: db, bus: bus}
}

// Save persists a new Card at position 1 of its board, shifting the owner's
// existing cards in the category down by one, and publishes CardCreatedEvent
// within the same transaction. Returns ErrCardAlreadyExists when the
// (owner, category, title) natural key is taken.
func (r *CardRepository) Save(ctx context.Context, card *models.Card) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE cards SET position = position + 1
			WHERE owner = $1 AND category = $2
		`, card.Owner, card.Category.String()); err != nil {
			return fmt.Errorf("shift positions: %w", err)
		}

		card.Position = 1
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cards (`+cardColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, card.ID, card.Owner, card.Category.String(), card.Title.String(),
			card.Description, card.DueDate, card.Color, card.URL, card.Image,
			card.Position, card.Status.String(), card.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return boarddomain.ErrCardAlreadyExists
			}
			return fmt.Errorf("insert card: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, card); err != nil {
				return fmt.Errorf("publish card created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Card by ID scoped to the given owner.
// Returns ErrCardNotFound if not found.
func (r *CardRepository) GetByID(ctx context.Context, owner string, id uuid.UUID) (*models.Card, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+cardColumns+` FROM cards WHERE owner = $1 AND id = $2
	`, owner, id)
	return scanCard(row)
}

// FindByKey resolves the (owner, category, title) natural key.
// Returns ErrCardNotFound if the triple does not resolve.
func (r *CardRepository) FindByKey(ctx context.Context, owner string, category models.Category, title string) (*models.Card, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+cardColumns+` FROM cards
		WHERE owner = $1 AND category = $2 AND title = $3
	`, owner, category.String(), title)
	return scanCard(row)
}

// FindByOwnerAndCategory retrieves the owner's cards for one category,
// ordered by position ascending.
func (r *CardRepository) FindByOwnerAndCategory(ctx context.Context, owner string, category models.Category) ([]*models.Card, error) {
	return r.queryCards(ctx, `
		SELECT `+cardColumns+` FROM cards
		WHERE owner = $1 AND category = $2
		ORDER BY position ASC
	`, owner, category.String())
}

// FindSharedWith retrieves cards in the category that have an ACCEPTED share
// addressed to recipient, in share insertion order.
func (r *CardRepository) FindSharedWith(ctx context.Context, recipient string, category models.Category) ([]*models.Card, error) {
	return r.queryCards(ctx, `
		SELECT c.id, c.owner, c.category, c.title, c.description, c.due_date,
		       c.color, c.url, c.image, c.position, c.status, c.created_at
		FROM cards c
		JOIN shares s ON s.card_id = c.id
		WHERE s.recipient = $1 AND s.status = 'ACCEPTED' AND c.category = $2
		ORDER BY s.created_at, s.id
	`, recipient, category.String())
}

// Update persists changes to an existing Card's mutable fields. Owner and
// category never change after creation.
func (r *CardRepository) Update(ctx context.Context, card *models.Card) error {
	_, err := r.db.DB().ExecContext(ctx, `
		UPDATE cards
		SET title = $1, description = $2, due_date = $3, color = $4,
		    url = $5, image = $6, position = $7, status = $8
		WHERE owner = $9 AND id = $10
	`, card.Title.String(), card.Description, card.DueDate, card.Color,
		card.URL, card.Image, card.Position, card.Status.String(),
		card.Owner, card.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return boarddomain.ErrCardAlreadyExists
		}
		return fmt.Errorf("update card: %w", err)
	}
	return nil
}

// Delete removes a card by ID scoped to the given owner and publishes
// CardDeletedEvent within the same transaction. The shares table carries
// ON DELETE CASCADE as a backstop; the service-level cascade runs first.
func (r *CardRepository) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM cards WHERE owner = $1 AND id = $2
		`, owner, id); err != nil {
			return fmt.Errorf("delete card: %w", err)
		}

		if r.bus != nil {
			if err := r.publishDeleted(tx, owner, id); err != nil {
				return fmt.Errorf("publish card deleted: %w", err)
			}
		}
		return nil
	})
}

// Exists reports whether a card with the given ID exists for the given owner.
func (r *CardRepository) Exists(ctx context.Context, owner string, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM cards WHERE owner = $1 AND id = $2)
	`, owner, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check card exists: %w", err)
	}
	return exists, nil
}

func (r *CardRepository) queryCards(ctx context.Context, query string, args ...any) ([]*models.Card, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	cards := []*models.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return cards, nil
}

func (r *CardRepository) publishCreated(tx *sql.Tx, card *models.Card) error {
	event := domainevents.CardCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		CardID:     card.ID,
		Owner:      card.Owner,
		Category:   card.Category.String(),
		Title:      card.Title.String(),
		OccurredAt: card.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicCardCreated, event.EventID, event)
}

func (r *CardRepository) publishDeleted(tx *sql.Tx, owner string, id uuid.UUID) error {
	event := domainevents.CardDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		CardID:     id,
		Owner:      owner,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicCardDeleted, event.EventID, event)
}

func (r *CardRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCard(s scanner) (*models.Card, error) {
	var (
		card     models.Card
		category string
		title    string
		status   string
		dueDate  sql.NullTime
	)
	err := s.Scan(&card.ID, &card.Owner, &category, &title, &card.Description,
		&dueDate, &card.Color, &card.URL, &card.Image, &card.Position,
		&status, &card.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, boarddomain.ErrCardNotFound
		}
		return nil, fmt.Errorf("scan card: %w", err)
	}

	card.Category = models.Category(category)
	card.Title = models.CardTitle(title)
	card.Status = models.CardStatus(status)
	if dueDate.Valid {
		t := dueDate.Time
		card.DueDate = &t
	}
	return &card, nil
}
