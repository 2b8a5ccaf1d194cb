package redis

import (
	"context"
	"time"
)

// IRedis is the byte-oriented subset of Redis used by the report cache.
// Implementations are safe for concurrent use.
type IRedis interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns ErrKeyNotFound when the key does not exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// NewRedis creates a new Redis client and verifies the connection. Returns the interface.
func NewRedis(cfg RedisConfig) (IRedis, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newRedisImpl(cfg.withDefaults())
}
