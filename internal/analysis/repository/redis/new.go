package redis

import (
	"time"

	"trend-srv/internal/analysis/repository"
	"trend-srv/pkg/log"
	pkgRedis "trend-srv/pkg/redis"
)

// KeyPrefix namespaces report keys in a shared Redis.
const KeyPrefix = "trend:report:"

type implCache struct {
	l     log.Logger
	redis pkgRedis.IRedis
	ttl   time.Duration
}

// New creates a Redis-backed report cache shared between replicas.
// Every Get decodes a fresh copy of the report.
func New(l log.Logger, redis pkgRedis.IRedis, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = 1800 * time.Second
	}
	return &implCache{
		l:     l,
		redis: redis,
		ttl:   ttl,
	}
}
