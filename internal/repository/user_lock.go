package repository

import (
	"context"
	"fmt"
	"time"

	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisUserLocker serializes write paths per user with SET NX.
type RedisUserLocker struct {
	Redis *redis.Client
	TTL   time.Duration
	// Wait bounds how long Lock retries before giving up.
	Wait time.Duration
}

func NewRedisUserLocker(rdb *redis.Client, ttl time.Duration) *RedisUserLocker {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &RedisUserLocker{Redis: rdb, TTL: ttl, Wait: 2 * time.Second}
}

func lockKey(userID uint) string {
	return fmt.Sprintf("ecotrack:lock:user:%d", userID)
}

// Lock blocks until the user's lock is free or Wait elapses, in which case
// it returns util.ErrUserBusy.
func (l *RedisUserLocker) Lock(ctx context.Context, userID uint) (func(), error) {
	key := lockKey(userID)
	token := uuid.NewString()
	deadline := time.Now().Add(l.Wait)

	for {
		ok, err := l.Redis.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: acquire user lock: %w", util.ErrPersistence, err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, util.ErrUserBusy
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	return func() {
		// the request context may already be cancelled
		if err := releaseScript.Run(context.Background(), l.Redis, []string{key}, token).Err(); err != nil {
			logger.L().Warn("Failed to release user lock", zap.Uint("user_id", userID), zap.Error(err))
		}
	}, nil
}
