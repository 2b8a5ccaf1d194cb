package redis

import (
	"context"
	"encoding/json"
	"errors"

	"trend-srv/internal/model"
	pkgRedis "trend-srv/pkg/redis"
)

// Get - Read and decode a cached report. Any Redis failure reads as a miss.
func (c *implCache) Get(ctx context.Context, key string) (*model.AnalysisReport, bool) {
	raw, err := c.redis.Get(ctx, KeyPrefix+key)
	if err != nil {
		if !errors.Is(err, pkgRedis.ErrKeyNotFound) {
			c.l.Warnf(ctx, "analysis.repository.redis.Get: Failed to read %s: %v", key, err)
		}
		return nil, false
	}

	var report model.AnalysisReport
	if err := json.Unmarshal(raw, &report); err != nil {
		c.l.Warnf(ctx, "analysis.repository.redis.Get: Failed to decode %s: %v", key, err)
		return nil, false
	}

	return &report, true
}

// Set - Encode and store a report with the cache TTL. Failures are logged only.
func (c *implCache) Set(ctx context.Context, key string, report *model.AnalysisReport) {
	if report == nil {
		return
	}

	body, err := json.Marshal(report)
	if err != nil {
		c.l.Warnf(ctx, "analysis.repository.redis.Set: Failed to encode %s: %v", key, err)
		return
	}

	if err := c.redis.Set(ctx, KeyPrefix+key, body, c.ttl); err != nil {
		c.l.Warnf(ctx, "analysis.repository.redis.Set: Failed to write %s: %v", key, err)
	}
}
