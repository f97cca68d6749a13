package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_Wait(t *testing.T) {
	fixed := Backoff{Attempts: 5, Delay: 5 * time.Second, Factor: 1}
	assert.Equal(t, 5*time.Second, fixed.wait(0))
	assert.Equal(t, 5*time.Second, fixed.wait(3))

	exp := Backoff{Attempts: 3, Delay: time.Second, Factor: 2}
	assert.Equal(t, time.Second, exp.wait(0))
	assert.Equal(t, 2*time.Second, exp.wait(1))
	assert.Equal(t, 4*time.Second, exp.wait(2))
}

func TestRetry_StopsOnSuccess(t *testing.T) {
	calls := 0
	err := retry(context.Background(), Backoff{Attempts: 5}, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_ReturnsLastErrorWhenExhausted(t *testing.T) {
	calls := 0
	err := retry(context.Background(), Backoff{Attempts: 3}, func(context.Context) error {
		calls++
		return errors.New("still failing")
	})

	assert.EqualError(t, err, "still failing")
	assert.Equal(t, 3, calls)
}

func TestRetry_PermanentErrorStopsEarly(t *testing.T) {
	boom := errors.New("reverted")
	calls := 0
	err := retry(context.Background(), Backoff{Attempts: 5}, func(context.Context) error {
		calls++
		return permanent(boom)
	})

	assert.Same(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_ = retry(context.Background(), Backoff{}, func(context.Context) error {
		calls++
		return errors.New("x")
	})
	assert.Equal(t, 1, calls)
}

func TestRetry_CancelledContextStopsSleeping(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	start := time.Now()
	err := retry(ctx, Backoff{Attempts: 5, Delay: time.Hour}, func(context.Context) error {
		calls++
		cancel()
		return errors.New("first")
	})

	assert.EqualError(t, err, "first")
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), time.Second)
}
