// internal/infrastructure/database/redis/slot.go
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Slot is the Redis-backed persisted key-value slot used by the cart store.
// Values expire through Redis TTLs, so an expired slot simply reads back as
// absent.
type Slot struct {
	client *redis.Client
}

// NewSlot creates a Slot on top of an existing Redis client.
func NewSlot(client *redis.Client) *Slot {
	return &Slot{client: client}
}

// Read returns the named value, reporting absence (including expiry) via ok.
func (s *Slot) Read(ctx context.Context, name string) (string, bool, error) {
	value, err := s.client.Get(ctx, name).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Write stores the named value with the given TTL, overwriting any prior
// value and restarting its expiry.
func (s *Slot) Write(ctx context.Context, name, value string, ttl time.Duration) error {
	return s.client.Set(ctx, name, value, ttl).Err()
}

// Delete removes the named value.
func (s *Slot) Delete(ctx context.Context, name string) error {
	return s.client.Del(ctx, name).Err()
}
