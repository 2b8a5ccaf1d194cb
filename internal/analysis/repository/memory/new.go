package memory

import (
	"sync"
	"time"

	"trend-srv/internal/analysis/repository"
	"trend-srv/internal/model"
)

// DefaultTTL is how long a report stays fresh.
const DefaultTTL = 1800 * time.Second

type entry struct {
	report   *model.AnalysisReport
	cachedAt time.Time
}

type implCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// New creates a process-local report cache. A non-positive ttl means DefaultTTL.
func New(ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}
