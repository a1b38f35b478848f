// Package poll provides a bounded fixed-interval polling primitive.
//
// [Until] repeatedly evaluates a probe up to a fixed attempt cap,
// short-circuiting on the first successful result. It backs the guest
// address discovery loop, which is the only place the provisioner ever
// re-tries anything on its own.
package poll

import (
	"context"
	"fmt"
	"time"
)

// ErrExhausted is returned by Until when the attempt budget runs out
// before the probe produces a result.
var ErrExhausted = fmt.Errorf("poll attempts exhausted")

// Until evaluates probe at a fixed interval until it reports success, the
// attempt cap is reached, or the context is cancelled. The probe returns
// (result, done, err): done stops polling immediately with result, a non-nil
// err aborts the poll, and (zero, false, nil) schedules another attempt.
//
// The first attempt runs immediately; the interval elapses only between
// attempts, so a poll with maxAttempts=1 never sleeps.
func Until[T any](ctx context.Context, interval time.Duration, maxAttempts int, probe func(context.Context) (T, bool, error)) (T, error) {
	var zero T
	if maxAttempts < 1 {
		return zero, fmt.Errorf("maxAttempts must be at least 1, got %d", maxAttempts)
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, done, err := probe(ctx)
		if err != nil {
			return zero, fmt.Errorf("poll attempt %d/%d: %w", attempt, maxAttempts, err)
		}
		if done {
			return result, nil
		}

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return zero, fmt.Errorf("poll cancelled after %d attempts: %w", attempt, ctx.Err())
			case <-time.After(interval):
			}
		}
	}

	return zero, fmt.Errorf("%w after %d attempts", ErrExhausted, maxAttempts)
}
