package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// CardCacheTTL is the time-to-live for cached cards.
	CardCacheTTL = 24 * time.Hour

	cardCacheKeyPrefix = "card"
)

// CachedCard is the denormalized read model stored in Redis. It carries the
// full card so the card view can be served from cache without a follow-up
// Postgres read.
type CachedCard struct {
	ID          uuid.UUID  `json:"id"`
	Owner       string     `json:"owner"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Color       string     `json:"color"`
	URL         string     `json:"url"`
	Image       []byte     `json:"image,omitempty"`
	Position    int        `json:"position"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CardCache provides structured read/write operations for card cache entries.
// Keys are scoped by owner to prevent cross-user data leakage.
// Key format: "card:{owner}:{cardID}"
type CardCache struct {
	client *RedisClient
}

// NewCardCache creates a new CardCache backed by the given RedisClient.
func NewCardCache(r *RedisClient) *CardCache {
	return &CardCache{client: r}
}

// Get retrieves a cached card by owner + card ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *CardCache) Get(ctx context.Context, owner string, cardID uuid.UUID) (*CachedCard, error) {
	key := c.key(owner, cardID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	position, err := strconv.Atoi(vals["position"])
	if err != nil {
		return nil, fmt.Errorf("cache parse position: %w", err)
	}

	var dueDate *time.Time
	if vals["due_date"] != "" {
		d, err := time.Parse(time.RFC3339Nano, vals["due_date"])
		if err != nil {
			return nil, fmt.Errorf("cache parse due_date: %w", err)
		}
		dueDate = &d
	}
	var image []byte
	if vals["image"] != "" {
		image = []byte(vals["image"])
	}

	return &CachedCard{
		ID:          id,
		Owner:       vals["owner"],
		Category:    vals["category"],
		Title:       vals["title"],
		Description: vals["description"],
		DueDate:     dueDate,
		Color:       vals["color"],
		URL:         vals["url"],
		Image:       image,
		Position:    position,
		Status:      vals["status"],
		CreatedAt:   createdAt,
	}, nil
}

// Set writes a cached card as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *CardCache) Set(ctx context.Context, card *CachedCard) error {
	key := c.key(card.Owner, card.ID)
	dueDate := ""
	if card.DueDate != nil {
		dueDate = card.DueDate.UTC().Format(time.RFC3339Nano)
	}
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", card.ID.String(),
		"owner", card.Owner,
		"category", card.Category,
		"title", card.Title,
		"description", card.Description,
		"due_date", dueDate,
		"color", card.Color,
		"url", card.URL,
		"image", card.Image,
		"position", strconv.Itoa(card.Position),
		"status", card.Status,
		"created_at", card.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, CardCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached card.
func (c *CardCache) Delete(ctx context.Context, owner string, cardID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(owner, cardID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "card:{owner}:{cardID}"
func (c *CardCache) key(owner string, cardID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", cardCacheKeyPrefix, owner, cardID)
}
