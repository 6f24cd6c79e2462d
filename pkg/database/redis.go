package database

import (
	"context"
	"fmt"
	"time"

	"ecotrack_backend/internal/config"
	applog "ecotrack_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// InitRedis returns a nil client when redis is disabled in config.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		applog.L().Info("Redis disabled, per-user locking and stats cache are off")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	applog.L().Info("Redis connection established")
	return rdb, nil
}
