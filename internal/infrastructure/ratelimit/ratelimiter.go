package ratelimit

import (
	"context"
	"time"
)

// Limit allows Requests per Window for a key.
type Limit struct {
	Requests int
	Window   time.Duration
}

// PerMinute is a convenience for the common case.
func PerMinute(n int) Limit {
	return Limit{Requests: n, Window: time.Minute}
}

type RateLimiter interface {
	// Allow records one request for key and reports whether it is within limit.
	// A non-positive limit allows everything.
	Allow(ctx context.Context, key string, limit Limit) (bool, error)
	Reset(ctx context.Context, key string) error
}
