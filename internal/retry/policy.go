// Package retry implements the fixed-delay retry policy used for provider requests.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nonceaudit/internal/clock"
)

// ErrAttemptsExhausted is returned by a bounded policy after its last failed attempt.
var ErrAttemptsExhausted = errors.New("retry attempts exhausted")

// Policy retries an operation with a fixed delay between attempts.
// MaxAttempts == 0 retries until the operation succeeds or the context is done.
type Policy struct {
	Delay       time.Duration
	MaxAttempts int
}

// Forever returns an unbounded policy with the given delay.
func Forever(delay time.Duration) Policy {
	return Policy{Delay: delay}
}

// Bounded returns a policy that gives up after attempts tries.
func Bounded(delay time.Duration, attempts int) Policy {
	return Policy{Delay: delay, MaxAttempts: attempts}
}

// Unbounded reports whether the policy never gives up.
func (p Policy) Unbounded() bool {
	return p.MaxAttempts <= 0
}

// Do runs op until it succeeds. onRetry, when set, is called after each failed attempt
// that will be retried, with the 1-based attempt number.
func (p Policy) Do(
	ctx context.Context,
	sleep clock.SleepFunc,
	op func(context.Context) error,
	onRetry func(attempt int, err error),
) error {
	if sleep == nil {
		sleep = clock.SleepWithContext
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := op(ctx)
		if err == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !p.Unbounded() && attempt >= p.MaxAttempts {
			return fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, attempt, err)
		}
		if onRetry != nil {
			onRetry(attempt, err)
		}
		if err := sleep(ctx, p.Delay); err != nil {
			return err
		}
	}
}
