package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gocatalog/catalog-api/internal/models"
)

// ProductCache is a read-through cache for product-by-id lookups. It is an
// optimization only: every failure degrades to a database read, never to an
// error for the caller. A nil *ProductCache is a valid no-op cache.
type ProductCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewProductCache creates a ProductCache with the given TTL.
func NewProductCache(redis *RedisClient, ttl time.Duration) *ProductCache {
	return &ProductCache{redis: redis, ttl: ttl}
}

// key returns the Redis key for a product id.
func (c *ProductCache) key(id int) string {
	return fmt.Sprintf("product:%d", id)
}

// Get returns the cached product or nil on miss.
func (c *ProductCache) Get(ctx context.Context, id int) *models.Product {
	if c == nil {
		return nil
	}
	raw, err := c.redis.Get(ctx, c.key(id))
	if err != nil {
		if !IsMiss(err) {
			log.Warn().Err(err).Int("product_id", id).Msg("product cache read failed")
		}
		return nil
	}
	var p models.Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Warn().Err(err).Int("product_id", id).Msg("product cache entry corrupt")
		_ = c.redis.Delete(ctx, c.key(id))
		return nil
	}
	return &p
}

// Put stores a product under its id.
func (c *ProductCache) Put(ctx context.Context, p *models.Product) {
	if c == nil || p == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, c.key(p.ID), string(raw), c.ttl); err != nil {
		log.Warn().Err(err).Int("product_id", p.ID).Msg("product cache write failed")
	}
}

// Invalidate drops the cache entry for an id. Called on every mutation so
// reads never observe a stale product after a write.
func (c *ProductCache) Invalidate(ctx context.Context, id int) {
	if c == nil {
		return
	}
	if err := c.redis.Delete(ctx, c.key(id)); err != nil {
		log.Warn().Err(err).Int("product_id", id).Msg("product cache invalidation failed")
	}
}
