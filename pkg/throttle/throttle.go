// Package throttle enforces a fixed delay between consecutive operations.
// Built on golang.org/x/time/rate with a burst of one: the first Wait
// proceeds immediately, every later Wait blocks until the delay since the
// previous permit has elapsed. Used to pace validation requests toward
// the target server.
package throttle

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces callers at one permit per fixed delay.
type Limiter struct {
	limiter *rate.Limiter
	delay   time.Duration
}

// New creates a Limiter with the given inter-operation delay. A delay of
// zero or less disables pacing.
func New(delay time.Duration) *Limiter {
	l := &Limiter{delay: delay}
	if delay > 0 {
		l.limiter = rate.NewLimiter(rate.Every(delay), 1)
	}
	return l
}

// Wait blocks until the next permit is available or the context is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.limiter == nil {
		return ctx.Err()
	}
	return l.limiter.Wait(ctx)
}

// Delay returns the configured inter-operation delay.
func (l *Limiter) Delay() time.Duration { return l.delay }
