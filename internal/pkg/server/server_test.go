package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownManager_ReverseOrderAndErrors(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	var order []string
	errRedis := errors.New("redis close failed")

	sm.Register("postgres", func(context.Context) error { order = append(order, "postgres"); return nil })
	sm.Register("redis", func(context.Context) error { order = append(order, "redis"); return errRedis })
	sm.Register("nats", func(context.Context) error { order = append(order, "nats"); return nil })

	err := sm.Shutdown(context.Background())

	assert.Equal(t, []string{"nats", "redis", "postgres"}, order)
	assert.ErrorIs(t, err, errRedis)
}

func TestGracefulServer_RunStopsOnCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	s := NewGracefulServer(e, logger.NewNopLogger(), 0, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
