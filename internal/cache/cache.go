package cache

import (
	"context"
	"fmt"
	"time"
)

// Store is a TTL key-value cache. The feed layer keeps rendered pages
// here; expiry is purely time-based and writes are never invalidated
// early.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ErrCacheDisabled is returned when cache operations are attempted but
// the backing store is not configured
var ErrCacheDisabled = fmt.Errorf("cache is disabled")

// FeedKey is the cache key for one page of the global feed
func FeedKey(page, size int) string {
	return fmt.Sprintf("feed:global:p%d:s%d", page, size)
}
