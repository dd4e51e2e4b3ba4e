package benefit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const catalogCacheKey = "quickclaim:benefits:catalog"

// CatalogCache lets the decorator use redis without binding tests to it.
type CatalogCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CachedCatalog is a read-through cache over the immutable benefit catalog.
// The matcher is pure and the catalog only changes by reseeding, so a short
// TTL is the only invalidation needed. Cache errors degrade to the
// underlying store; they never fail a read.
type CachedCatalog struct {
	next   Catalog
	cache  CatalogCache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedCatalog(next Catalog, cache CatalogCache, ttl time.Duration, logger *slog.Logger) *CachedCatalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedCatalog{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (c *CachedCatalog) ListAll(ctx context.Context) ([]*Program, error) {
	if payload, err := c.cache.Get(ctx, catalogCacheKey).Bytes(); err == nil {
		var programs []*Program
		if err := json.Unmarshal(payload, &programs); err == nil {
			return programs, nil
		}
		c.logger.WarnContext(ctx, "corrupt catalog cache entry, refetching")
	}

	programs, err := c.next.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(programs); err == nil {
		if err := c.cache.Set(ctx, catalogCacheKey, payload, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "failed to cache catalog", "error", err)
		}
	}
	return programs, nil
}
