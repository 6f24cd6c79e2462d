package repository

import (
	"context"
	"errors"
	"time"

	"ecotrack_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// RedisStatsCache keeps serialized statistics snapshots in redis.
type RedisStatsCache struct {
	Redis *redis.Client
}

func NewRedisStatsCache(rdb *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{Redis: rdb}
}

func (c *RedisStatsCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.Redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, util.ErrNotFound
	}
	return raw, err
}

func (c *RedisStatsCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.Redis.Set(ctx, key, value, ttl).Err()
}
