package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// InviteCountTTL caps how long a stale counter can survive; the worker
	// refreshes it on every share event, so expiry only matters when the
	// worker is down.
	InviteCountTTL = 7 * 24 * time.Hour

	inviteCountKeyPrefix = "invites:pending"
)

// InviteCountCache keeps a best-effort pending-invitation counter per
// recipient, maintained by the worker from share lifecycle events. It is a
// UI hint only; the Invitations view itself always polls the store.
type InviteCountCache struct {
	client *RedisClient
}

// NewInviteCountCache creates an InviteCountCache backed by the given RedisClient.
func NewInviteCountCache(r *RedisClient) *InviteCountCache {
	return &InviteCountCache{client: r}
}

// Set overwrites the recipient's pending counter with an authoritative value.
func (c *InviteCountCache) Set(ctx context.Context, recipient string, count int64) error {
	if err := c.client.Client().Set(ctx, c.key(recipient), count, InviteCountTTL).Err(); err != nil {
		return fmt.Errorf("invite count set: %w", err)
	}
	return nil
}

// Get returns the recipient's pending counter, or 0 when no counter exists.
func (c *InviteCountCache) Get(ctx context.Context, recipient string) (int64, error) {
	n, err := c.client.Client().Get(ctx, c.key(recipient)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("invite count get: %w", err)
	}
	return n, nil
}

// Delete drops the recipient's counter, forcing the next read to miss.
func (c *InviteCountCache) Delete(ctx context.Context, recipient string) error {
	if err := c.client.Client().Del(ctx, c.key(recipient)).Err(); err != nil {
		return fmt.Errorf("invite count delete: %w", err)
	}
	return nil
}

func (c *InviteCountCache) key(recipient string) string {
	return fmt.Sprintf("%s:%s", inviteCountKeyPrefix, recipient)
}
