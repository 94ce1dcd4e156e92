package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	boarddomain "github.com/ghuser/taskdeck/services/board/domain"
	"github.com/ghuser/taskdeck/services/board/domain/models"
)

// fakeCardRepo is an in-memory CardRepository that mirrors the position
// semantics of the Postgres implementation.
type fakeCardRepo struct {
	cards map[uuid.UUID]*models.Card
	// accepted shares, recipient -> card IDs, in insertion order
	sharedWith map[string][]uuid.UUID
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{
		cards:      make(map[uuid.UUID]*models.Card),
		sharedWith: make(map[string][]uuid.UUID),
	}
}

func (f *fakeCardRepo) Save(_ context.Context, card *models.Card) error {
	for _, c := range f.cards {
		if c.Owner == card.Owner && c.Category == card.Category && c.Title == card.Title {
			return boarddomain.ErrCardAlreadyExists
		}
		if c.Owner == card.Owner && c.Category == card.Category {
			c.Position++
		}
	}
	card.Position = 1
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardRepo) GetByID(_ context.Context, owner string, id uuid.UUID) (*models.Card, error) {
	card, ok := f.cards[id]
	if !ok || card.Owner != owner {
		return nil, boarddomain.ErrCardNotFound
	}
	return card, nil
}

func (f *fakeCardRepo) FindByKey(_ context.Context, owner string, category models.Category, title string) (*models.Card, error) {
	for _, c := range f.cards {
		if c.Owner == owner && c.Category == category && c.Title.String() == title {
			return c, nil
		}
	}
	return nil, boarddomain.ErrCardNotFound
}

func (f *fakeCardRepo) FindByOwnerAndCategory(_ context.Context, owner string, category models.Category) ([]*models.Card, error) {
	var out []*models.Card
	for _, c := range f.cards {
		if c.Owner == owner && c.Category == category {
			out = append(out, c)
		}
	}
	// position ascending
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if out[j].Position < out[i].Position {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeCardRepo) FindSharedWith(_ context.Context, recipient string, category models.Category) ([]*models.Card, error) {
	var out []*models.Card
	for _, id := range f.sharedWith[recipient] {
		if c, ok := f.cards[id]; ok && c.Category == category {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCardRepo) Update(_ context.Context, card *models.Card) error {
	if _, ok := f.cards[card.ID]; !ok {
		return boarddomain.ErrCardNotFound
	}
	for _, c := range f.cards {
		if c.ID != card.ID && c.Owner == card.Owner && c.Category == card.Category && c.Title == card.Title {
			return boarddomain.ErrCardAlreadyExists
		}
	}
	f.cards[card.ID] = card
	return nil
}

func (f *fakeCardRepo) Delete(_ context.Context, owner string, id uuid.UUID) error {
	card, ok := f.cards[id]
	if !ok || card.Owner != owner {
		return boarddomain.ErrCardNotFound
	}
	delete(f.cards, id)
	return nil
}

func (f *fakeCardRepo) Exists(_ context.Context, owner string, id uuid.UUID) (bool, error) {
	card, ok := f.cards[id]
	return ok && card.Owner == owner, nil
}

// fakeRevoker records cascade calls and can be told to fail.
type fakeRevoker struct {
	revoked []uuid.UUID
	err     error
}

func (f *fakeRevoker) RevokeAll(_ context.Context, cardID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.revoked = append(f.revoked, cardID)
	return nil
}

func TestCardService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new card lands at position 1", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewCardService(repo, &fakeRevoker{}, nil)

		first, err := svc.Create(ctx, "alice", models.CategoryWork, "first", CardInput{})
		if err != nil {
			t.Fatalf("create first: %v", err)
		}
		second, err := svc.Create(ctx, "alice", models.CategoryWork, "second", CardInput{})
		if err != nil {
			t.Fatalf("create second: %v", err)
		}

		if second.Position != 1 {
			t.Fatalf("expected new card at position 1, got %d", second.Position)
		}
		if repo.cards[first.ID].Position != 2 {
			t.Fatalf("expected older card shifted to 2, got %d", repo.cards[first.ID].Position)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewCardService(repo, &fakeRevoker{}, nil)

		card, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if card.Color != "FFFFFF" {
			t.Fatalf("expected default color FFFFFF, got %q", card.Color)
		}
		if card.Status != models.StatusNotDone {
			t.Fatalf("expected not_done status, got %s", card.Status)
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		svc := NewCardService(newFakeCardRepo(), &fakeRevoker{}, nil)

		_, err := svc.Create(ctx, "alice", models.CategoryWork, "", CardInput{})
		if !errors.Is(err, boarddomain.ErrInvalidCardTitle) {
			t.Fatalf("expected ErrInvalidCardTitle, got %v", err)
		}
	})

	t.Run("overlong title rejected", func(t *testing.T) {
		svc := NewCardService(newFakeCardRepo(), &fakeRevoker{}, nil)

		_, err := svc.Create(ctx, "alice", models.CategoryWork, strings.Repeat("x", 256), CardInput{})
		if !errors.Is(err, boarddomain.ErrInvalidCardTitle) {
			t.Fatalf("expected ErrInvalidCardTitle, got %v", err)
		}
	})

	t.Run("duplicate natural key rejected", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewCardService(repo, &fakeRevoker{}, nil)

		if _, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{}); err != nil {
			t.Fatalf("create: %v", err)
		}
		_, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{})
		if !errors.Is(err, boarddomain.ErrCardAlreadyExists) {
			t.Fatalf("expected ErrCardAlreadyExists, got %v", err)
		}
	})

	t.Run("same title allowed across categories and owners", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewCardService(repo, &fakeRevoker{}, nil)

		if _, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{}); err != nil {
			t.Fatalf("create work: %v", err)
		}
		if _, err := svc.Create(ctx, "alice", models.CategoryUniversity, "task", CardInput{}); err != nil {
			t.Fatalf("expected same title in another category to succeed: %v", err)
		}
		if _, err := svc.Create(ctx, "bob", models.CategoryWork, "task", CardInput{}); err != nil {
			t.Fatalf("expected same title for another owner to succeed: %v", err)
		}
	})
}

func TestCardService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces descriptive fields", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewCardService(repo, &fakeRevoker{}, nil)

		card, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{Description: "old"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		updated, err := svc.Update(ctx, "alice", card.ID, CardInput{
			Description: "new",
			Color:       "00FF00",
			URL:         "https://example.com/doc",
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Description != "new" || updated.Color != "00FF00" {
			t.Fatalf("fields not replaced: %q %q", updated.Description, updated.Color)
		}
		if updated.Title != card.Title || updated.Category != card.Category {
			t.Fatal("empty title must keep the current one; category never changes")
		}
	})

	t.Run("rename keeps shares intact", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewCardService(repo, &fakeRevoker{}, nil)
		boardSvc := NewBoardService(repo)

		card, err := svc.Create(ctx, "alice", models.CategoryWork, "old title", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		repo.sharedWith["bob"] = []uuid.UUID{card.ID}

		updated, err := svc.Update(ctx, "alice", card.ID, CardInput{Title: "new title"})
		if err != nil {
			t.Fatalf("rename: %v", err)
		}
		if updated.Title.String() != "new title" {
			t.Fatalf("expected renamed title, got %q", updated.Title)
		}

		cards, err := boardSvc.EffectiveCards(ctx, "bob", models.CategoryWork)
		if err != nil {
			t.Fatalf("effective cards: %v", err)
		}
		if len(cards) != 1 || cards[0].ID != card.ID {
			t.Fatal("shared card must survive a rename")
		}
	})

	t.Run("rename to taken title rejected", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewCardService(repo, &fakeRevoker{}, nil)

		if _, err := svc.Create(ctx, "alice", models.CategoryWork, "taken", CardInput{}); err != nil {
			t.Fatalf("create: %v", err)
		}
		card, err := svc.Create(ctx, "alice", models.CategoryWork, "mine", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		if _, err := svc.Update(ctx, "alice", card.ID, CardInput{Title: "taken"}); !errors.Is(err, boarddomain.ErrCardAlreadyExists) {
			t.Fatalf("expected ErrCardAlreadyExists, got %v", err)
		}
	})

	t.Run("overlong rename rejected", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewCardService(repo, &fakeRevoker{}, nil)

		card, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		if _, err := svc.Update(ctx, "alice", card.ID, CardInput{Title: strings.Repeat("x", 256)}); !errors.Is(err, boarddomain.ErrInvalidCardTitle) {
			t.Fatalf("expected ErrInvalidCardTitle, got %v", err)
		}
	})

	t.Run("empty color keeps current", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewCardService(repo, &fakeRevoker{}, nil)

		card, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{Color: "112233"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		updated, err := svc.Update(ctx, "alice", card.ID, CardInput{})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Color != "112233" {
			t.Fatalf("expected color preserved, got %q", updated.Color)
		}
	})

	t.Run("wrong owner", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewCardService(repo, &fakeRevoker{}, nil)

		card, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		if _, err := svc.Update(ctx, "bob", card.ID, CardInput{}); !errors.Is(err, boarddomain.ErrCardNotFound) {
			t.Fatalf("expected ErrCardNotFound, got %v", err)
		}
	})
}

func TestCardService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCardRepo()
	svc := NewCardService(repo, &fakeRevoker{}, nil)

	due := time.Now().UTC().Add(24 * time.Hour)
	card, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{
		Description: "full details",
		DueDate:     &due,
		Color:       "112233",
		URL:         "https://example.com/doc",
		Image:       []byte{0x01, 0x02},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(ctx, "alice", card.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description != "full details" || got.Color != "112233" || got.URL != "https://example.com/doc" {
		t.Fatalf("descriptive fields missing: %+v", got)
	}
	if got.DueDate == nil || len(got.Image) == 0 {
		t.Fatalf("optional fields missing: %+v", got)
	}

	if _, err := svc.GetByID(ctx, "bob", card.ID); !errors.Is(err, boarddomain.ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound for wrong owner, got %v", err)
	}
	if _, err := svc.GetByID(ctx, "alice", uuid.New()); !errors.Is(err, boarddomain.ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound for unknown id, got %v", err)
	}
}

func TestCachedCardConversion_FullFidelity(t *testing.T) {
	due := time.Now().UTC().Truncate(time.Second)
	title, err := models.NewCardTitle("cached")
	if err != nil {
		t.Fatalf("new title: %v", err)
	}
	card, err := models.NewCard("alice", models.CategoryUniversity, title)
	if err != nil {
		t.Fatalf("new card: %v", err)
	}
	card.Description = "everything round-trips"
	card.DueDate = &due
	card.Color = "ABCDEF"
	card.URL = "https://example.com/x"
	card.Image = []byte{0xDE, 0xAD}
	card.Position = 4
	card.Status = models.StatusDone

	got := cachedToCard(CachedFromCard(card))
	if got.ID != card.ID || got.Owner != card.Owner || got.Category != card.Category || got.Title != card.Title {
		t.Fatalf("identity fields lost: %+v", got)
	}
	if got.Description != card.Description || got.Color != card.Color || got.URL != card.URL {
		t.Fatalf("descriptive fields lost: %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("due date lost: %v", got.DueDate)
	}
	if string(got.Image) != string(card.Image) || got.Position != 4 || got.Status != models.StatusDone {
		t.Fatalf("state fields lost: %+v", got)
	}
}

func TestCardService_SetStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCardRepo()
	svc := NewCardService(repo, &fakeRevoker{}, nil)

	card, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.SetStatus(ctx, "alice", card.ID, models.StatusDone); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if repo.cards[card.ID].Status != models.StatusDone {
		t.Fatalf("expected done, got %s", repo.cards[card.ID].Status)
	}

	if err := svc.SetStatus(ctx, "bob", card.ID, models.StatusDone); !errors.Is(err, boarddomain.ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound for wrong owner, got %v", err)
	}
}

func TestCardService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes shares then deletes", func(t *testing.T) {
		repo := newFakeCardRepo()
		revoker := &fakeRevoker{}
		svc := NewCardService(repo, revoker, nil)

		card, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		if err := svc.Delete(ctx, "alice", card.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if len(revoker.revoked) != 1 || revoker.revoked[0] != card.ID {
			t.Fatalf("expected shares revoked for %v, got %v", card.ID, revoker.revoked)
		}
		if _, ok := repo.cards[card.ID]; ok {
			t.Fatal("expected card removed")
		}
	})

	t.Run("missing card", func(t *testing.T) {
		svc := NewCardService(newFakeCardRepo(), &fakeRevoker{}, nil)

		err := svc.Delete(ctx, "alice", uuid.New())
		if !errors.Is(err, boarddomain.ErrCardNotFound) {
			t.Fatalf("expected ErrCardNotFound, got %v", err)
		}
	})

	t.Run("revocation failure aborts delete", func(t *testing.T) {
		repo := newFakeCardRepo()
		revoker := &fakeRevoker{err: errors.New("share store down")}
		svc := NewCardService(repo, revoker, nil)

		card, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		if err := svc.Delete(ctx, "alice", card.ID); err == nil {
			t.Fatal("expected delete to fail")
		}
		if _, ok := repo.cards[card.ID]; !ok {
			t.Fatal("card must survive when revocation fails")
		}
	})

	t.Run("wrong owner", func(t *testing.T) {
		repo := newFakeCardRepo()
		svc := NewCardService(repo, &fakeRevoker{}, nil)

		card, err := svc.Create(ctx, "alice", models.CategoryWork, "task", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		if err := svc.Delete(ctx, "bob", card.ID); !errors.Is(err, boarddomain.ErrCardNotFound) {
			t.Fatalf("expected ErrCardNotFound, got %v", err)
		}
	})
}

func TestBoardService_EffectiveCards(t *testing.T) {
	ctx := context.Background()

	t.Run("owned then shared", func(t *testing.T) {
		repo := newFakeCardRepo()
		cardSvc := NewCardService(repo, &fakeRevoker{}, nil)
		boardSvc := NewBoardService(repo)

		older, err := cardSvc.Create(ctx, "bob", models.CategoryWork, "own older", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		newer, err := cardSvc.Create(ctx, "bob", models.CategoryWork, "own newer", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		shared, err := cardSvc.Create(ctx, "alice", models.CategoryWork, "from alice", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		repo.sharedWith["bob"] = []uuid.UUID{shared.ID}

		cards, err := boardSvc.EffectiveCards(ctx, "bob", models.CategoryWork)
		if err != nil {
			t.Fatalf("effective cards: %v", err)
		}
		if len(cards) != 3 {
			t.Fatalf("expected 3 cards, got %d", len(cards))
		}
		if cards[0].ID != newer.ID || cards[1].ID != older.ID {
			t.Fatalf("owned cards out of position order: %v, %v", cards[0].Title, cards[1].Title)
		}
		if cards[2].ID != shared.ID {
			t.Fatalf("expected shared card last, got %v", cards[2].Title)
		}
	})

	t.Run("category filter applies to shared cards", func(t *testing.T) {
		repo := newFakeCardRepo()
		cardSvc := NewCardService(repo, &fakeRevoker{}, nil)
		boardSvc := NewBoardService(repo)

		workCard, err := cardSvc.Create(ctx, "alice", models.CategoryWork, "work card", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		uniCard, err := cardSvc.Create(ctx, "alice", models.CategoryUniversity, "uni card", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		repo.sharedWith["bob"] = []uuid.UUID{workCard.ID, uniCard.ID}

		cards, err := boardSvc.EffectiveCards(ctx, "bob", models.CategoryUniversity)
		if err != nil {
			t.Fatalf("effective cards: %v", err)
		}
		if len(cards) != 1 || cards[0].ID != uniCard.ID {
			t.Fatalf("expected only the university card, got %d cards", len(cards))
		}
	})

	t.Run("no duplicate by identity", func(t *testing.T) {
		repo := newFakeCardRepo()
		cardSvc := NewCardService(repo, &fakeRevoker{}, nil)
		boardSvc := NewBoardService(repo)

		card, err := cardSvc.Create(ctx, "bob", models.CategoryWork, "mine", CardInput{})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		repo.sharedWith["bob"] = []uuid.UUID{card.ID}

		cards, err := boardSvc.EffectiveCards(ctx, "bob", models.CategoryWork)
		if err != nil {
			t.Fatalf("effective cards: %v", err)
		}
		if len(cards) != 1 {
			t.Fatalf("expected 1 card, got %d", len(cards))
		}
	})

	t.Run("empty board", func(t *testing.T) {
		boardSvc := NewBoardService(newFakeCardRepo())

		cards, err := boardSvc.EffectiveCards(ctx, "bob", models.CategoryFreeTime)
		if err != nil {
			t.Fatalf("effective cards: %v", err)
		}
		if len(cards) != 0 {
			t.Fatalf("expected empty board, got %d cards", len(cards))
		}
	})
}
