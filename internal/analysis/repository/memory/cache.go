package memory

import (
	"context"

	"trend-srv/internal/model"
)

// Get returns the stored pointer itself, so repeated hits observe the same report.
func (c *implCache) Get(ctx context.Context, key string) (*model.AnalysisReport, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(e.cachedAt) >= c.ttl {
		return nil, false
	}
	return e.report, true
}

// Set stores report under key and drops expired entries.
func (c *implCache) Set(ctx context.Context, key string, report *model.AnalysisReport) {
	if report == nil {
		return
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if now.Sub(e.cachedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry{report: report, cachedAt: now}
}
