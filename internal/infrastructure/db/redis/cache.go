package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookhaven/bookstore-api/internal/api/metrics"
)

const cacheTTL = 5 * time.Minute

// CatalogCache is a Redis-backed read-through cache for catalog list
// responses. Entries expire after cacheTTL; mutations invalidate eagerly.
type CatalogCache struct {
	client *redis.Client
}

func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

func (c *CatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return true, nil
}

func (c *CatalogCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *CatalogCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
