// Package retry re-runs upstream calls on transient failures with exponential backoff.
package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/muhammedkado/find-job-with-ai/pkg/logger"
)

type Config struct {
	MaxRetries  uint64
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// Default is suitable for most HTTP calls.
var Default = Config{
	MaxRetries:  2,
	InitialWait: 500 * time.Millisecond,
	MaxWait:     5 * time.Second,
	Multiplier:  2.0,
}

// None disables retries.
var None = Config{}

// StatusError is a non-2xx upstream reply.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// Do calls fn until it succeeds, returns a non-retryable error, runs out of
// retries or ctx is done.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var result T

	b := backoff.NewExponentialBackOff()
	if cfg.InitialWait > 0 {
		b.InitialInterval = cfg.InitialWait
	}
	if cfg.MaxWait > 0 {
		b.MaxInterval = cfg.MaxWait
	}
	if cfg.Multiplier > 0 {
		b.Multiplier = cfg.Multiplier
	}
	b.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(b, cfg.MaxRetries), ctx)
	op := func() error {
		v, err := fn()
		if err != nil {
			if !Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		result = v
		return nil
	}
	notify := func(err error, wait time.Duration) {
		logger.Ctx(ctx).Debug().Err(err).Dur("wait", wait).Msg("retrying upstream call")
	}
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// Retryable reports whether err is worth another attempt: 429/5xx replies and
// network failures. Context cancellation never is.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return RetryableStatus(se.StatusCode)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func RetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}
