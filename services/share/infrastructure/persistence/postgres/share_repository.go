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
	sharedomain "github.com/ghuser/taskdeck/services/share/domain"
	domainevents "github.com/ghuser/taskdeck/services/share/domain/events"
	"github.com/ghuser/taskdeck/services/share/domain/models"
)

// ShareRepository implements repositories.ShareRepository against PostgreSQL.
// Mutations publish share lifecycle events within the same transaction
// (outbox pattern); the card's natural key is joined in for event payloads.
type ShareRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewShareRepository returns a ShareRepository backed by the given connection
// pool and event bus. A nil bus disables event publishing (tests).
func NewShareRepository(db *database.Database, bus *events.EventBus) *ShareRepository {
	return &ShareRepository{db: db, bus: bus}
}

// Insert persists a new PENDING share and publishes ShareRequestedEvent
// within the same transaction. Returns domain.ErrDuplicateShare on unique
// constraint violations; the service's Exists pre-check races are resolved
// here by the store's native atomicity.
func (r *ShareRepository) Insert(ctx context.Context, share *models.Share) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO shares (id, card_id, recipient, status, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, share.ID, share.CardID, share.Recipient, share.Status.String(), share.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return sharedomain.ErrDuplicateShare
			}
			return fmt.Errorf("insert share: %w", err)
		}

		if r.bus != nil {
			if err := r.publishRequested(ctx, tx, share); err != nil {
				return fmt.Errorf("publish share requested: %w", err)
			}
		}
		return nil
	})
}

// FindPendingByRecipient returns the invitations addressed to recipient,
// PENDING only, in insertion order.
func (r *ShareRepository) FindPendingByRecipient(ctx context.Context, recipient string) ([]models.Invite, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT c.owner, c.category, c.title
		FROM shares s
		JOIN cards c ON s.card_id = c.id
		WHERE s.recipient = $1 AND s.status = $2
		ORDER BY s.created_at, s.id
	`, recipient, models.StatusPending.String())
	if err != nil {
		return nil, fmt.Errorf("query pending shares: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	invites := []models.Invite{}
	for rows.Next() {
		var inv models.Invite
		if err := rows.Scan(&inv.Owner, &inv.Category, &inv.Title); err != nil {
			return nil, fmt.Errorf("scan invite: %w", err)
		}
		invites = append(invites, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invites: %w", err)
	}
	return invites, nil
}

// AcceptIfPending transitions PENDING→ACCEPTED with a conditional update
// keyed on the current status, publishing ShareAcceptedEvent in the same
// transaction when a row matched. Returns false for zero matched rows.
func (r *ShareRepository) AcceptIfPending(ctx context.Context, recipient string, cardID uuid.UUID) (bool, error) {
	var matched bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE shares SET status = $1
			WHERE recipient = $2 AND card_id = $3 AND status = $4
		`, models.StatusAccepted.String(), recipient, cardID, models.StatusPending.String())
		if err != nil {
			return fmt.Errorf("accept share: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("accept share rows: %w", err)
		}
		matched = n > 0

		if matched && r.bus != nil {
			if err := r.publishAccepted(ctx, tx, recipient, cardID); err != nil {
				return fmt.Errorf("publish share accepted: %w", err)
			}
		}
		return nil
	})
	return matched, err
}

// DeleteIfPending removes the PENDING row for (recipient, card), publishing
// ShareRevokedEvent in the same transaction when a row matched so the
// recipient's pending counter is refreshed on rejection too.
func (r *ShareRepository) DeleteIfPending(ctx context.Context, recipient string, cardID uuid.UUID) (bool, error) {
	var matched bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			DELETE FROM shares
			WHERE recipient = $1 AND card_id = $2 AND status = $3
		`, recipient, cardID, models.StatusPending.String())
		if err != nil {
			return fmt.Errorf("delete pending share: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete pending share rows: %w", err)
		}
		matched = n > 0

		if matched && r.bus != nil {
			if err := r.publishRevoked(tx, recipient, cardID); err != nil {
				return fmt.Errorf("publish share revoked: %w", err)
			}
		}
		return nil
	})
	return matched, err
}

// Delete removes the share regardless of status, publishing
// ShareRevokedEvent in the same transaction when a row matched.
func (r *ShareRepository) Delete(ctx context.Context, recipient string, cardID uuid.UUID) (bool, error) {
	var matched bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			DELETE FROM shares WHERE recipient = $1 AND card_id = $2
		`, recipient, cardID)
		if err != nil {
			return fmt.Errorf("delete share: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete share rows: %w", err)
		}
		matched = n > 0

		if matched && r.bus != nil {
			if err := r.publishRevoked(tx, recipient, cardID); err != nil {
				return fmt.Errorf("publish share revoked: %w", err)
			}
		}
		return nil
	})
	return matched, err
}

// Exists reports whether any share (PENDING or ACCEPTED) exists for the pair.
func (r *ShareRepository) Exists(ctx context.Context, recipient string, cardID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM shares WHERE recipient = $1 AND card_id = $2
		)
	`, recipient, cardID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check share exists: %w", err)
	}
	return exists, nil
}

// DeleteByCard removes every share referencing the card. Zero rows is fine.
func (r *ShareRepository) DeleteByCard(ctx context.Context, cardID uuid.UUID) error {
	if _, err := r.db.DB().ExecContext(ctx, `
		DELETE FROM shares WHERE card_id = $1
	`, cardID); err != nil {
		return fmt.Errorf("delete shares by card: %w", err)
	}
	return nil
}

// DeleteByRecipient removes every share addressed to the recipient. Zero rows
// is fine. No events are published; the recipient's counter dies with the
// account this cascade serves.
func (r *ShareRepository) DeleteByRecipient(ctx context.Context, recipient string) error {
	if _, err := r.db.DB().ExecContext(ctx, `
		DELETE FROM shares WHERE recipient = $1
	`, recipient); err != nil {
		return fmt.Errorf("delete shares by recipient: %w", err)
	}
	return nil
}

// ListRecipientsByCard returns all recipients sharing the card, in either status.
func (r *ShareRepository) ListRecipientsByCard(ctx context.Context, cardID uuid.UUID) ([]string, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT recipient FROM shares WHERE card_id = $1
	`, cardID)
	if err != nil {
		return nil, fmt.Errorf("query recipients: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	recipients := []string{}
	for rows.Next() {
		var recipient string
		if err := rows.Scan(&recipient); err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		recipients = append(recipients, recipient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipients: %w", err)
	}
	return recipients, nil
}

// DeleteStalePending removes PENDING rows created before cutoff, publishing
// ShareRevokedEvent per swept row so each recipient's pending counter is
// refreshed after the sweep.
func (r *ShareRepository) DeleteStalePending(ctx context.Context, cutoff time.Time) (int64, error) {
	var swept int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			DELETE FROM shares WHERE status = $1 AND created_at < $2
			RETURNING recipient, card_id
		`, models.StatusPending.String(), cutoff)
		if err != nil {
			return fmt.Errorf("delete stale pending shares: %w", err)
		}
		defer rows.Close() //nolint:errcheck

		type sweptShare struct {
			recipient string
			cardID    uuid.UUID
		}
		var deleted []sweptShare
		for rows.Next() {
			var s sweptShare
			if err := rows.Scan(&s.recipient, &s.cardID); err != nil {
				return fmt.Errorf("scan stale pending share: %w", err)
			}
			deleted = append(deleted, s)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate stale pending shares: %w", err)
		}
		swept = int64(len(deleted))

		if r.bus != nil {
			for _, s := range deleted {
				if err := r.publishRevoked(tx, s.recipient, s.cardID); err != nil {
					return fmt.Errorf("publish share revoked: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return swept, nil
}

func (r *ShareRepository) publishRequested(ctx context.Context, tx *sql.Tx, share *models.Share) error {
	owner, category, title, err := cardKey(ctx, tx, share.CardID)
	if err != nil {
		return err
	}
	event := domainevents.ShareRequestedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ShareID:    share.ID,
		CardID:     share.CardID,
		Owner:      owner,
		Recipient:  share.Recipient,
		Category:   category,
		Title:      title,
		OccurredAt: share.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicShareRequested, event.EventID, event)
}

func (r *ShareRepository) publishAccepted(ctx context.Context, tx *sql.Tx, recipient string, cardID uuid.UUID) error {
	owner, _, _, err := cardKey(ctx, tx, cardID)
	if err != nil {
		return err
	}
	event := domainevents.ShareAcceptedEvent{
		EventID:    uuid.New(),
		Version:    1,
		CardID:     cardID,
		Owner:      owner,
		Recipient:  recipient,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicShareAccepted, event.EventID, event)
}

func (r *ShareRepository) publishRevoked(tx *sql.Tx, recipient string, cardID uuid.UUID) error {
	event := domainevents.ShareRevokedEvent{
		EventID:    uuid.New(),
		Version:    1,
		CardID:     cardID,
		Recipient:  recipient,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicShareRevoked, event.EventID, event)
}

func (r *ShareRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
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

// cardKey looks up the card's natural key inside the transaction so event
// payloads carry the externally meaningful triple.
func cardKey(ctx context.Context, tx *sql.Tx, cardID uuid.UUID) (owner, category, title string, err error) {
	err = tx.QueryRowContext(ctx, `
		SELECT owner, category, title FROM cards WHERE id = $1
	`, cardID).Scan(&owner, &category, &title)
	if err != nil {
		return "", "", "", fmt.Errorf("query card key: %w", err)
	}
	return owner, category, title, nil
}
