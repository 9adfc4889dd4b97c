package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errDown = errors.New("nsqd down")

func failing(context.Context) error { return errDown }
func passing(context.Context) error { return nil }

func newTestBreaker(threshold int) (*CircuitBreaker, *time.Time) {
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cb := New(Config{Name: "test", FailureThreshold: threshold, Cooldown: time.Minute})
	cb.now = func() time.Time { return clock }
	return cb, &clock
}

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(2)
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, failing), errDown)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, failing), errDown)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestBreaker_SuccessResetsFailures(t *testing.T) {
	cb, _ := newTestBreaker(2)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	assert.NoError(t, cb.Execute(ctx, passing))
	_ = cb.Execute(ctx, failing)
	assert.Equal(t, StateClosed, cb.State())
}

func TestBreaker_ProbeAfterCooldown(t *testing.T) {
	cb, clock := newTestBreaker(1)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	assert.Equal(t, StateOpen, cb.State())

	*clock = clock.Add(2 * time.Minute)
	assert.ErrorIs(t, cb.Execute(ctx, failing), errDown)
	assert.Equal(t, StateOpen, cb.State(), "failed probe reopens")

	*clock = clock.Add(2 * time.Minute)
	assert.NoError(t, cb.Execute(ctx, passing))
	assert.Equal(t, StateClosed, cb.State())
}
