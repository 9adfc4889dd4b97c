package server

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestGracefulServer_RunAndStop(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, logger.NewNopLogger(), "127.0.0.1", 0, time.Second)

	closed := false
	gs.OnShutdown(func(ctx context.Context) error {
		closed = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.True(t, closed)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestShutdownManager_Order(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	var order []int
	var mu sync.Mutex

	for i := 0; i < 3; i++ {
		index := i
		sm.Register(func(ctx context.Context) error {
			mu.Lock()
			order = append(order, index)
			mu.Unlock()
			return nil
		})
	}
	sm.Register(nil)

	assert.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestShutdownManager_ContinuesPastFailures(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	boom := errors.New("redis close failed")
	secondRan := false

	sm.Register(func(ctx context.Context) error { return boom })
	sm.Register(func(ctx context.Context) error {
		secondRan = true
		return nil
	})

	err := sm.Shutdown(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.True(t, secondRan)
}
