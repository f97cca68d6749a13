package service

import (
	"context"
	"errors"
	"time"
)

// Backoff is a bounded retry schedule. Factor 1 gives a fixed delay; Factor 2
// doubles the delay after every failed attempt.
type Backoff struct {
	Attempts int
	Delay    time.Duration
	Factor   float64
}

// SingleAttempt never retries.
var SingleAttempt = Backoff{Attempts: 1}

// wait returns the pause before attempt n (0-based) following a failure.
func (b Backoff) wait(n int) time.Duration {
	d := b.Delay
	if b.Factor > 1 {
		for i := 0; i < n; i++ {
			d = time.Duration(float64(d) * b.Factor)
		}
	}
	return d
}

func (b Backoff) attempts() int {
	if b.Attempts < 1 {
		return 1
	}
	return b.Attempts
}

// permanentError stops a retry loop early.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// permanent marks err as not worth retrying.
func permanent(err error) error {
	return &permanentError{err: err}
}

// retry calls fn until it succeeds, returns a permanent error, the attempt
// budget is spent, or ctx is done. It returns the last error unwrapped.
func retry(ctx context.Context, b Backoff, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < b.attempts(); attempt++ {
		if attempt > 0 {
			if serr := sleepCtx(ctx, b.wait(attempt-1)); serr != nil {
				return err
			}
		}
		if err = fn(ctx); err == nil {
			return nil
		}
		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
	}
	return err
}

// sleepCtx pauses for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
