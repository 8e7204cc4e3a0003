package access

import (
	"context"
	"fmt"
	"time"
)

type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func NewRetryPolicy(maxAttempts int, baseDelay time.Duration) (RetryPolicy, error) {
	if maxAttempts < 1 {
		return RetryPolicy{}, fmt.Errorf("NewRetryPolicy: max attempts %d: %w", maxAttempts, ErrInvalidRetryPolicy)
	}
	if baseDelay < 0 {
		return RetryPolicy{}, fmt.Errorf("NewRetryPolicy: base delay %s: %w", baseDelay, ErrInvalidRetryPolicy)
	}
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
	}, nil
}

// Delay returns the wait before the given 1-indexed attempt.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	return p.BaseDelay << (attempt - 2)
}

var wait = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RetryCall invokes call up to policy.MaxAttempts times with exponential backoff between attempts.
// Only the last failure is returned.
func RetryCall[T any](ctx context.Context, call Call[T], policy RetryPolicy) (T, error) {
	var zero T
	var lastErr error
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := wait(ctx, policy.Delay(attempt)); err != nil {
				return zero, fmt.Errorf("RetryCall: aborted before attempt %d: %w: %w", attempt, err, lastErr)
			}
		}
		res, err := call(ctx)
		if err == nil {
			return res, nil
		}
		lastErr = err
	}
	return zero, lastErr
}
