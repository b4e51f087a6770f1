package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// RestaurantCache is a best-effort read-through cache for public
// restaurant reads. Key format: restaurant:<id>. Cache failures are
// logged at debug level and never fail the request.
type RestaurantCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewRestaurantCache creates a RestaurantCache wrapping the given Redis client.
func NewRestaurantCache(client *redis.Client, log zerolog.Logger) *RestaurantCache {
	return &RestaurantCache{client: client, log: log}
}

// Get returns the cached restaurant for id, if present and decodable.
func (c *RestaurantCache) Get(ctx context.Context, id string) (*domain.Restaurant, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug().Err(err).Str("restaurant_id", id).Msg("cache get failed")
		}
		return nil, false
	}

	var r domain.Restaurant
	if err := json.Unmarshal(raw, &r); err != nil {
		c.log.Debug().Err(err).Str("restaurant_id", id).Msg("cache entry undecodable")
		return nil, false
	}
	return &r, true
}

// Set stores the restaurant under its id (expires after cacheTTL).
func (c *RestaurantCache) Set(ctx context.Context, r *domain.Restaurant) {
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(r.ID), raw, cacheTTL).Err(); err != nil {
		c.log.Debug().Err(err).Str("restaurant_id", r.ID).Msg("cache set failed")
	}
}

// Invalidate drops the cache entry for id after a write.
func (c *RestaurantCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Debug().Err(err).Str("restaurant_id", id).Msg("cache invalidate failed")
	}
}

func (c *RestaurantCache) key(id string) string {
	return fmt.Sprintf("restaurant:%s", id)
}
