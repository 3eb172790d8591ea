package lock

import (
	"context"
	"sync"
	"time"
)

const stripeCount = 256

// LocalLocker is an in-process striped lock. Members hashing to the same stripe
// serialize with each other, which is harmless for correctness.
type LocalLocker struct {
	stripes [stripeCount]chan struct{}
	wait    time.Duration
}

func NewLocalLocker(wait time.Duration) *LocalLocker {
	l := &LocalLocker{wait: wait}
	for i := range l.stripes {
		l.stripes[i] = make(chan struct{}, 1)
	}
	return l
}

func (l *LocalLocker) Lock(ctx context.Context, memberID uint) (func(), error) {
	stripe := l.stripes[memberID%stripeCount]

	waitCtx, cancel := waitContext(ctx, l.wait)
	defer cancel()

	select {
	case stripe <- struct{}{}:
	case <-waitCtx.Done():
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, busy(memberID)
	}

	var once sync.Once
	return func() {
		once.Do(func() { <-stripe })
	}, nil
}
