package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
)

// cacheTTL is deliberately short: a deleted account is invalidated
// explicitly, but the TTL caps staleness if that invalidation is lost.
const cacheTTL = 30 * time.Second

// UserCache caches public user records for token-subject resolution.
// Key format: user:<id>. Values are JSON without the password digest.
type UserCache struct {
	client *redis.Client
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

// Get returns the cached user and whether the key was present.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("user cache get: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, false, fmt.Errorf("user cache decode: %w", err)
	}
	return &user, true, nil
}

// Set stores the user for cacheTTL. Callers pass public users only; the
// digest field has json:"-" so it could never round-trip anyway.
func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("user cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), raw, cacheTTL).Err()
}

// Invalidate drops the cache entry so a deleted or updated account stops
// resolving from stale data.
func (c *UserCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *UserCache) key(id string) string {
	return "user:" + id
}
