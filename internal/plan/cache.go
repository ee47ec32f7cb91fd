package plan

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// cachedProjection wraps a projection with version metadata for cache invalidation
type cachedProjection struct {
	Version    string
	Flow       domain.CashFlow
	ComputedAt time.Time
}

// projectionCache memoizes cash-flow projections by horizon. Projections do not
// depend on the table, so entries stay valid until the plan config changes,
// which it never does for the life of a Service.
type projectionCache struct {
	lru *expirable.LRU[int, *cachedProjection]
}

func newProjectionCache(size int, ttl time.Duration) *projectionCache {
	if size <= 0 {
		size = DefaultProjectionCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultProjectionCacheTTL
	}
	return &projectionCache{
		lru: expirable.NewLRU[int, *cachedProjection](size, nil, ttl),
	}
}

// Get returns a cached projection. Entries written under another schema
// version are evicted and reported as missing.
func (c *projectionCache) Get(days int) (domain.CashFlow, bool) {
	entry, found := c.lru.Get(days)
	if !found {
		return domain.CashFlow{}, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(days)
		return domain.CashFlow{}, false
	}
	return copyFlow(entry.Flow), true
}

func (c *projectionCache) Set(days int, flow domain.CashFlow) {
	c.lru.Add(days, &cachedProjection{
		Version:    CacheSchemaVersion,
		Flow:       copyFlow(flow),
		ComputedAt: time.Now(),
	})
}

func (c *projectionCache) Len() int {
	return c.lru.Len()
}

// copyFlow detaches the tier slice so callers cannot mutate cached entries
func copyFlow(flow domain.CashFlow) domain.CashFlow {
	flow.Tiers = append([]domain.TierCashFlow(nil), flow.Tiers...)
	return flow
}
