package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	boarddomain "github.com/ghuser/taskdeck/services/board/domain"
	boardmodels "github.com/ghuser/taskdeck/services/board/domain/models"
	sharedomain "github.com/ghuser/taskdeck/services/share/domain"
	"github.com/ghuser/taskdeck/services/share/domain/models"
	"github.com/ghuser/taskdeck/services/share/domain/repositories"
)

// ShareService is the single authority for share state. All operations take
// explicit user identifiers; there is no ambient current-user context.
//
// The external protocol addresses cards by their (owner, category, title)
// natural key; the service resolves it to the card's surrogate ID before
// touching share rows, so renaming a card never corrupts existing shares.
// Event publishing is handled by the repository layer (outbox pattern).
type ShareService struct {
	repo  repositories.ShareRepository
	cards repositories.CardDirectory
	users repositories.UserDirectory
}

// NewShareService returns a ShareService wired with the given repository and
// the board/user directories it validates against.
func NewShareService(repo repositories.ShareRepository, cards repositories.CardDirectory, users repositories.UserDirectory) *ShareService {
	return &ShareService{repo: repo, cards: cards, users: users}
}

// RequestShare creates a PENDING share of the owner's card for recipient.
//
// Fails with ErrSelfShare when recipient and owner are the same login
// (compared case-insensitively), ErrUnknownRecipient when recipient is not
// registered, the board domain's ErrCardNotFound when the triple does not
// resolve, and ErrDuplicateShare when a share already exists in either
// status. No partial state is left behind on failure, so a retried request
// fails cleanly rather than creating a second row.
func (s *ShareService) RequestShare(ctx context.Context, recipient, owner string, category boardmodels.Category, title string) error {
	if strings.EqualFold(recipient, owner) {
		return sharedomain.ErrSelfShare
	}

	known, err := s.users.Exists(ctx, recipient)
	if err != nil {
		return fmt.Errorf("check recipient: %w", err)
	}
	if !known {
		return sharedomain.ErrUnknownRecipient
	}

	card, err := s.cards.FindByKey(ctx, owner, category, title)
	if err != nil {
		return fmt.Errorf("resolve card: %w", err)
	}

	exists, err := s.repo.Exists(ctx, recipient, card.ID)
	if err != nil {
		return fmt.Errorf("check share: %w", err)
	}
	if exists {
		return sharedomain.ErrDuplicateShare
	}

	if err := s.repo.Insert(ctx, models.NewShare(card.ID, recipient)); err != nil {
		return fmt.Errorf("save share: %w", err)
	}
	return nil
}

// ListPending returns the invitations addressed to recipient, PENDING only,
// in insertion order. Read-only and restartable; the Invitations view calls
// it both to render and to re-render after a decision.
func (s *ShareService) ListPending(ctx context.Context, recipient string) ([]models.Invite, error) {
	invites, err := s.repo.FindPendingByRecipient(ctx, recipient)
	if err != nil {
		return nil, fmt.Errorf("list pending shares: %w", err)
	}
	return invites, nil
}

// Decide applies the recipient's verdict on a pending share. ACCEPT
// transitions PENDING→ACCEPTED and retains the row; REJECT deletes it,
// leaving no residue, so the owner may request again later.
//
// Fails with ErrShareNotFound when no PENDING row matches, including when a
// concurrent decision or revocation got there first; the store's conditional
// update means whichever operation commits first wins.
func (s *ShareService) Decide(ctx context.Context, recipient, owner string, category boardmodels.Category, title string, decision models.Decision) error {
	card, err := s.cards.FindByKey(ctx, owner, category, title)
	if err != nil {
		return fmt.Errorf("resolve card: %w", err)
	}

	var matched bool
	switch decision {
	case models.DecisionAccept:
		matched, err = s.repo.AcceptIfPending(ctx, recipient, card.ID)
	case models.DecisionReject:
		matched, err = s.repo.DeleteIfPending(ctx, recipient, card.ID)
	default:
		return fmt.Errorf("unknown decision %q", decision)
	}
	if err != nil {
		return fmt.Errorf("decide share: %w", err)
	}
	if !matched {
		return sharedomain.ErrShareNotFound
	}
	return nil
}

// Exists reports whether any share (PENDING or ACCEPTED) exists for the pair.
// A triple that does not resolve to a card yields false, not an error.
func (s *ShareService) Exists(ctx context.Context, recipient, owner string, category boardmodels.Category, title string) (bool, error) {
	card, err := s.cards.FindByKey(ctx, owner, category, title)
	if err != nil {
		if errors.Is(err, boarddomain.ErrCardNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("resolve card: %w", err)
	}

	exists, err := s.repo.Exists(ctx, recipient, card.ID)
	if err != nil {
		return false, fmt.Errorf("check share: %w", err)
	}
	return exists, nil
}

// Revoke deletes the share regardless of status. Used both when the recipient
// removes their own access and when the owner manages collaborators. A second
// call fails cleanly with ErrShareNotFound rather than corrupting state.
func (s *ShareService) Revoke(ctx context.Context, recipient, owner string, category boardmodels.Category, title string) error {
	card, err := s.cards.FindByKey(ctx, owner, category, title)
	if err != nil {
		return fmt.Errorf("resolve card: %w", err)
	}

	matched, err := s.repo.Delete(ctx, recipient, card.ID)
	if err != nil {
		return fmt.Errorf("revoke share: %w", err)
	}
	if !matched {
		return sharedomain.ErrShareNotFound
	}
	return nil
}

// RevokeAll deletes every share referencing the card. Invoked by the card
// deletion flow before the card row is removed; zero matching rows is fine.
func (s *ShareService) RevokeAll(ctx context.Context, cardID uuid.UUID) error {
	if err := s.repo.DeleteByCard(ctx, cardID); err != nil {
		return fmt.Errorf("revoke all shares: %w", err)
	}
	return nil
}

// RevokeAllForRecipient deletes every share addressed to the recipient, in
// either status. Invoked by the account deletion flow before the user row is
// removed; zero matching rows is fine.
func (s *ShareService) RevokeAllForRecipient(ctx context.Context, recipient string) error {
	if err := s.repo.DeleteByRecipient(ctx, recipient); err != nil {
		return fmt.Errorf("revoke shares for recipient: %w", err)
	}
	return nil
}

// ListRecipients returns all recipients currently sharing the card,
// regardless of status. Set semantics; order not guaranteed.
func (s *ShareService) ListRecipients(ctx context.Context, owner string, category boardmodels.Category, title string) ([]string, error) {
	card, err := s.cards.FindByKey(ctx, owner, category, title)
	if err != nil {
		return nil, fmt.Errorf("resolve card: %w", err)
	}

	recipients, err := s.repo.ListRecipientsByCard(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	return recipients, nil
}

// SweepStalePending deletes PENDING shares older than ttl and returns the
// number of rows removed. Driven by the invitation sweep workflow.
func (s *ShareService) SweepStalePending(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-ttl)
	swept, err := s.repo.DeleteStalePending(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("sweep stale shares: %w", err)
	}
	return swept, nil
}
