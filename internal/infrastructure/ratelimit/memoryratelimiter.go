package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const sweepInterval = time.Minute

type memoryEntry struct {
	limiter  *rate.Limiter
	window   time.Duration
	lastSeen time.Time
}

// MemoryRateLimiter is a per-process token bucket per key, used when Redis is not configured.
// A bucket idle for a whole window has refilled, so it is dropped on the next sweep.
type MemoryRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*memoryEntry
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryRateLimiter(now func() time.Time) RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &MemoryRateLimiter{
		limiters:  make(map[string]*memoryEntry),
		lastSweep: now(),
		now:       now,
	}
}

func (l *MemoryRateLimiter) Allow(ctx context.Context, key string, limit Limit) (bool, error) {
	if limit.Requests <= 0 || limit.Window <= 0 {
		return true, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= sweepInterval {
		l.sweep(now)
	}

	entry, ok := l.limiters[key]
	if !ok {
		every := rate.Every(limit.Window / time.Duration(limit.Requests))
		entry = &memoryEntry{
			limiter: rate.NewLimiter(every, limit.Requests),
			window:  limit.Window,
		}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1), nil
}

func (l *MemoryRateLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	delete(l.limiters, key)
	l.mu.Unlock()
	return nil
}

// sweep drops idle buckets. Callers hold mu.
func (l *MemoryRateLimiter) sweep(now time.Time) {
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= entry.window {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}
