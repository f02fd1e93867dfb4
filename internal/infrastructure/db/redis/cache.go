package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/api/metrics"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

const (
	analyticsKey = "analytics:snapshot"
	analyticsTTL = 30 * time.Second
)

// AnalyticsCache stores a short-lived JSON snapshot of the admin analytics
// summary in Redis. It is purely an optimisation: a cache failure degrades to
// recomputing from Postgres, never to an error.
type AnalyticsCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewAnalyticsCache creates an AnalyticsCache wrapping the given Redis client.
func NewAnalyticsCache(client *redis.Client, log zerolog.Logger) *AnalyticsCache {
	return &AnalyticsCache{client: client, log: log}
}

// Get returns the cached snapshot when present and fresh.
func (c *AnalyticsCache) Get(ctx context.Context) (*ports.AnalyticsResult, bool) {
	raw, err := c.client.Get(ctx, analyticsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("analytics cache read failed")
		}
		metrics.AnalyticsCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var result ports.AnalyticsResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.log.Warn().Err(err).Msg("analytics cache payload corrupt")
		metrics.AnalyticsCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.AnalyticsCacheTotal.WithLabelValues("hit").Inc()
	return &result, true
}

// Set stores the snapshot with a short expiry.
func (c *AnalyticsCache) Set(ctx context.Context, result *ports.AnalyticsResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		c.log.Warn().Err(err).Msg("analytics cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, analyticsKey, raw, analyticsTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("analytics cache write failed")
	}
}
