package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Integration tests, skipped unless REDIS_URL is set.
func TestCardCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	cc := NewCardCache(rc)
	ctx := context.Background()

	t.Run("SetGet_RoundTrip", func(t *testing.T) {
		due := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
		card := &CachedCard{
			ID:          uuid.New(),
			Owner:       "alice",
			Category:    "work",
			Title:       "report",
			Description: "draft the numbers",
			DueDate:     &due,
			Color:       "FFAA00",
			URL:         "https://example.com/doc",
			Image:       []byte{0x89, 0x50, 0x4e, 0x47},
			Position:    2,
			Status:      "not_done",
			CreatedAt:   time.Now().UTC().Truncate(time.Second),
		}
		if err := cc.Set(ctx, card); err != nil {
			t.Fatalf("set: %v", err)
		}

		got, err := cc.Get(ctx, "alice", card.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Title != "report" || got.Owner != "alice" || got.Status != "not_done" {
			t.Fatalf("unexpected cached card: %+v", got)
		}
		if got.Description != card.Description || got.Color != card.Color || got.URL != card.URL {
			t.Fatalf("descriptive fields lost in round trip: %+v", got)
		}
		if got.Position != 2 {
			t.Fatalf("expected position 2, got %d", got.Position)
		}
		if got.DueDate == nil || !got.DueDate.Equal(due) {
			t.Fatalf("due date lost in round trip: %v", got.DueDate)
		}
		if string(got.Image) != string(card.Image) {
			t.Fatalf("image bytes lost in round trip")
		}
	})

	t.Run("SetGet_NilOptionalFields", func(t *testing.T) {
		card := &CachedCard{
			ID:        uuid.New(),
			Owner:     "alice",
			Category:  "work",
			Title:     "bare",
			Color:     "FFFFFF",
			Position:  1,
			Status:    "done",
			CreatedAt: time.Now().UTC(),
		}
		if err := cc.Set(ctx, card); err != nil {
			t.Fatalf("set: %v", err)
		}

		got, err := cc.Get(ctx, "alice", card.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.DueDate != nil || len(got.Image) != 0 {
			t.Fatalf("expected empty optional fields, got %+v", got)
		}
	})

	t.Run("Get_Miss", func(t *testing.T) {
		_, err := cc.Get(ctx, "alice", uuid.New())
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil on miss, got %v", err)
		}
	})

	t.Run("Delete_RemovesEntry", func(t *testing.T) {
		card := &CachedCard{ID: uuid.New(), Owner: "alice", Category: "work", Title: "x", Status: "done", CreatedAt: time.Now().UTC()}
		if err := cc.Set(ctx, card); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := cc.Delete(ctx, "alice", card.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := cc.Get(ctx, "alice", card.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})
}

func TestInviteCountCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ic := NewInviteCountCache(rc)
	ctx := context.Background()

	t.Run("SetGet_RoundTrip", func(t *testing.T) {
		if err := ic.Set(ctx, "bob", 3); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := ic.Get(ctx, "bob")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("Get_MissingIsZero", func(t *testing.T) {
		got, err := ic.Get(ctx, "nobody")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != 0 {
			t.Fatalf("expected 0 for unknown recipient, got %d", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := ic.Set(ctx, "carol", 5); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := ic.Delete(ctx, "carol"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		got, err := ic.Get(ctx, "carol")
		if err != nil || got != 0 {
			t.Fatalf("expected 0 after delete, got (%d, %v)", got, err)
		}
	})
}
