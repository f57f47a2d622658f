package cache

import (
	"context"
	"time"
)

// Store is the key-value contract used for the current-session mirror.
// Implemented by the Redis client and the in-memory fallback.
type Store interface {
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
