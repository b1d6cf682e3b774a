package recommend

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ramneet9/Food-DEL/internal/menu"
)

// Cache stores computed recommendation lists per customer.
type Cache interface {
	Get(ctx context.Context, userID string) ([]menu.Item, bool)
	Set(ctx context.Context, userID string, items []menu.Item)
}

// RedisCache keeps recommendation lists in redis with a short TTL so
// the dashboard does not recompute the ranking on every load.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) key(userID string) string {
	return "recommendations:" + userID
}

func (c *RedisCache) Get(ctx context.Context, userID string) ([]menu.Item, bool) {
	payload, err := c.Client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var items []menu.Item
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *RedisCache) Set(ctx context.Context, userID string, items []menu.Item) {
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.Client.Set(ctx, c.key(userID), payload, c.TTL)
}
