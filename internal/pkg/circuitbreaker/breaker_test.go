package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newTestBreaker(clock *fakeClock) *CircuitBreaker {
	cfg := DefaultConfig("telephony")
	cfg.FailureThreshold = 2
	cfg.Timeout = 10 * time.Second
	cfg.Clock = clock
	return New(cfg, logger.NewNopLogger())
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	cb := newTestBreaker(clock)
	errDown := errors.New("provider down")
	fail := func(context.Context) error { return errDown }

	assert.ErrorIs(t, cb.Execute(context.Background(), fail), errDown)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), fail), errDown)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
	assert.Error(t, cb.CheckHealth(context.Background()))
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	cb := newTestBreaker(clock)
	fail := func(context.Context) error { return errors.New("down") }

	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), fail)
	assert.Equal(t, StateOpen, cb.State())

	clock.now = clock.now.Add(11 * time.Second)

	err := cb.Execute(context.Background(), func(context.Context) error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
	assert.NoError(t, cb.CheckHealth(context.Background()))
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	cb := newTestBreaker(clock)
	fail := func(context.Context) error { return errors.New("down") }

	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), fail)
	clock.now = clock.now.Add(11 * time.Second)

	_ = cb.Execute(context.Background(), fail)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_IgnoredErrorsDoNotTrip(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	errClient := errors.New("bad number")
	cfg := DefaultConfig("telephony")
	cfg.FailureThreshold = 1
	cfg.Clock = clock
	cfg.IsFailure = func(err error) bool { return err != nil && !errors.Is(err, errClient) }
	cb := New(cfg, logger.NewNopLogger())

	_ = cb.Execute(context.Background(), func(context.Context) error { return errClient })
	assert.Equal(t, StateClosed, cb.State())
}
