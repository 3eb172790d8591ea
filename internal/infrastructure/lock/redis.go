package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gymflow/gymflow/internal/shared/logger"
)

const (
	keyPrefix     = "gymflow:lock:member:"
	retryInterval = 25 * time.Millisecond
)

// releaseScript deletes the lock only while it still holds our token.
// KEYS[1] = lock key, ARGV[1] = token
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`)

// RedisLocker is a SET NX PX lock shared by every API replica.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
	logger logger.Interface
}

func NewRedisLocker(client *redis.Client, ttl, wait time.Duration, log logger.Interface) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisLocker{
		client: client,
		ttl:    ttl,
		wait:   wait,
		logger: log,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, memberID uint) (func(), error) {
	key := fmt.Sprintf("%s%d", keyPrefix, memberID)
	token := uuid.NewString()

	waitCtx, cancel := waitContext(ctx, l.wait)
	defer cancel()

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for {
		acquired, err := l.client.SetNX(waitCtx, key, token, l.ttl).Result()
		if err != nil && waitCtx.Err() == nil {
			return nil, fmt.Errorf("failed to acquire member lock: %w", err)
		}
		if acquired {
			break
		}

		select {
		case <-ticker.C:
		case <-waitCtx.Done():
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return nil, busy(memberID)
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// the caller's ctx may already be cancelled
			releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
				l.logger.Warnw("failed to release member lock", "member_id", memberID, "error", err)
			}
		})
	}, nil
}
