package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/beken0w/yatube/pkg/config"
	"github.com/beken0w/yatube/pkg/logging"
)

// Redis is a Store backed by a shared Redis instance, for deployments
// running more than one server process.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed store
func NewRedis(cfg *config.CacheConfig) (*Redis, error) {
	if !cfg.RedisEnabled {
		logging.GetLogger().Info("Redis cache disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.GetLogger().Info("Redis connection established")

	return &Redis{client: client}, nil
}

func (r *Redis) namespaceKey(key string) string {
	return "yatube:" + key
}

// Get retrieves a value from Redis
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if r == nil || r.client == nil {
		return nil, false, ErrCacheDisabled
	}
	value, err := r.client.Get(ctx, r.namespaceKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores a value in Redis with TTL
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if r == nil || r.client == nil {
		return ErrCacheDisabled
	}
	return r.client.Set(ctx, r.namespaceKey(key), value, ttl).Err()
}

// Delete removes a key from Redis
func (r *Redis) Delete(ctx context.Context, key string) error {
	if r == nil || r.client == nil {
		return ErrCacheDisabled
	}
	return r.client.Del(ctx, r.namespaceKey(key)).Err()
}

// Close closes the Redis connection
func (r *Redis) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

// Health checks Redis health
func (r *Redis) Health(ctx context.Context) error {
	if r == nil || r.client == nil {
		return ErrCacheDisabled
	}
	return r.client.Ping(ctx).Err()
}
