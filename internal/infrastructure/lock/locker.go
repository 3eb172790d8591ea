// Package lock serializes mutations of a single member's membership.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/config"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

// MemberLocker grants exclusive access to one member's records for the duration
// of a use case. The returned func releases the lock and is safe to call more
// than once. Lock fails with membership.ErrConflict when the member stays busy
// past the configured wait.
type MemberLocker interface {
	Lock(ctx context.Context, memberID uint) (func(), error)
}

// NewMemberLocker builds the locker selected by cfg.Driver. client may be nil for "local".
func NewMemberLocker(cfg config.LockConfig, client *redis.Client, log logger.Interface) (MemberLocker, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalLocker(cfg.Wait()), nil
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("redis lock driver requires a redis client")
		}
		return NewRedisLocker(client, cfg.TTL(), cfg.Wait(), log), nil
	default:
		return nil, fmt.Errorf("unsupported lock driver %q", cfg.Driver)
	}
}

func busy(memberID uint) error {
	return fmt.Errorf("%w: membership of member %d is being modified", membership.ErrConflict, memberID)
}

func waitContext(ctx context.Context, wait time.Duration) (context.Context, context.CancelFunc) {
	if wait <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, wait)
}
