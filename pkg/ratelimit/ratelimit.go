// Package ratelimit provides the call-rate ceiling used for per-job scoring
// and the pacer for outbound provider calls.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether one more call may be made right now.
// Denied calls are skipped by the caller, never queued.
type Limiter interface {
	Allow() bool
}

// Window allows at most limit calls in any interval of length size.
// It remembers the times of the last limit allowed calls.
type Window struct {
	mu    sync.Mutex
	limit int
	size  time.Duration
	calls []time.Time // ring, calls[next] is the oldest once full
	next  int
	now   func() time.Time
}

func NewWindow(limit int, size time.Duration) *Window {
	return &Window{
		limit: limit,
		size:  size,
		calls: make([]time.Time, 0, limit),
		now:   time.Now,
	}
}

// NewPerMinute returns a limiter for n calls per rolling minute. n <= 0 means unlimited.
func NewPerMinute(n int) Limiter {
	if n <= 0 {
		return Unlimited{}
	}
	return NewWindow(n, time.Minute)
}

func (w *Window) Allow() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	if len(w.calls) < w.limit {
		w.calls = append(w.calls, now)
		return true
	}
	if now.Sub(w.calls[w.next]) < w.size {
		return false
	}
	w.calls[w.next] = now
	w.next = (w.next + 1) % w.limit
	return true
}

// Unlimited never denies.
type Unlimited struct{}

func (Unlimited) Allow() bool { return true }

// Pacer spaces outbound calls, blocking until the next one may go.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewPacer returns a token bucket of perSecond with the given burst, or nil
// when perSecond <= 0.
func NewPacer(perSecond float64, burst int) Pacer {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
