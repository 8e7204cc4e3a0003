package access

import (
	"context"
	"fmt"
	"time"
)

// Call is a single outbound operation.
type Call[T any] func(ctx context.Context) (T, error)

type TimedResult[T any] struct {
	Payload T
	Elapsed time.Duration
}

func (r TimedResult[T]) ElapsedMs() int64 {
	return durationMs(r.Elapsed)
}

// TimedError carries the elapsed time of a failed call alongside the original failure.
type TimedError struct {
	Err     error
	Elapsed time.Duration
}

func (e *TimedError) Error() string {
	return fmt.Sprintf("%v (failed after %dms)", e.Err, e.ElapsedMs())
}

func (e *TimedError) Unwrap() error {
	return e.Err
}

func (e *TimedError) ElapsedMs() int64 {
	return durationMs(e.Elapsed)
}

// MeasureCall runs call and reports how long it took, on success and on failure.
func MeasureCall[T any](ctx context.Context, call Call[T]) (TimedResult[T], error) {
	start := time.Now()
	payload, err := call(ctx)
	elapsed := time.Since(start)
	if err != nil {
		return TimedResult[T]{Elapsed: elapsed}, &TimedError{
			Err:     err,
			Elapsed: elapsed,
		}
	}
	return TimedResult[T]{
		Payload: payload,
		Elapsed: elapsed,
	}, nil
}

func durationMs(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return d.Milliseconds()
}
