// Package retry wraps an operation with bounded, backoff-spaced retries.
// Callers apply it at the use-case boundary, never inside a held lock.
package retry

import (
	"context"
	"time"

	"github.com/eapache/go-resiliency/retrier"
)

// Backoff returns the delays to sleep between attempts; len == retries.
type Backoff func(retries int) []time.Duration

// Exponential doubles the delay after every failed attempt, starting from initial.
func Exponential(initial time.Duration) Backoff {
	return func(retries int) []time.Duration {
		return retrier.ExponentialBackoff(retries, initial)
	}
}

// Constant sleeps the same delay between attempts.
func Constant(delay time.Duration) Backoff {
	return func(retries int) []time.Duration {
		return retrier.ConstantBackoff(retries, delay)
	}
}

type classifier func(error) bool

func (c classifier) Classify(err error) retrier.Action {
	if err == nil {
		return retrier.Succeed
	}
	if c != nil && c(err) {
		return retrier.Retry
	}
	return retrier.Fail
}

// WithRetry runs op up to maxAttempts times. Only errors accepted by isRetryable
// trigger another attempt; anything else is returned immediately. When the
// attempts are exhausted the last error is returned unchanged.
func WithRetry(ctx context.Context, op func(ctx context.Context) error, maxAttempts int, backoff Backoff, isRetryable func(error) bool) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if backoff == nil {
		backoff = Constant(0)
	}
	r := retrier.New(backoff(maxAttempts-1), classifier(isRetryable))
	return r.RunCtx(ctx, op)
}

// Policy bundles the retry parameters of one use case.
type Policy struct {
	MaxAttempts int
	Backoff     Backoff
	IsRetryable func(error) bool
}

func (p Policy) Run(ctx context.Context, op func(ctx context.Context) error) error {
	return WithRetry(ctx, op, p.MaxAttempts, p.Backoff, p.IsRetryable)
}

// Do is Run for operations that produce a value.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := p.Run(ctx, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}
