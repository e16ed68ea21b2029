package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a thin JSON cache for read projections. A nil *Cache is valid and
// behaves as a permanent miss, so deployments without Redis keep working.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string) *Cache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, cache disabled: %v", err)
		return nil
	}

	return &Cache{
		client: redis.NewClient(opts),
		ttl:    5 * time.Minute,
	}
}

func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache invalidate: %v", err)
	}
}

// Projection keys shared by handlers and their invalidating writers.
const (
	KeyClientsDropdown  = "projection:clients:dropdown"
	KeyServicesDropdown = "projection:services:dropdown"
	KeyAppointmentList  = "projection:appointments:list"
)
