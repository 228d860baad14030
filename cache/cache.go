// Package cache holds the key/value stores behind the page cache.
package cache

import (
	"context"
	"time"
)

// Store is a TTL-bound byte store shared by all request handlers.
type Store interface {
	// Get returns the value under key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
