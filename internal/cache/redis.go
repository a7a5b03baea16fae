package cache

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airportregistry/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores rendered query results. Keys are namespaced by an
// instance id because the callers' keys embed a registry revision that is
// only meaningful inside one process.
type RedisCache struct {
	client    *redis.Client
	ttl       time.Duration
	namespace string
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:       ttl,
		namespace: uuid.NewString(),
	}
}

// Get reports ok=false on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, c.key(key), value, c.ttl).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) key(key string) string {
	return "cache:" + c.namespace + ":" + key
}
