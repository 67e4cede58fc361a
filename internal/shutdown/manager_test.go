package shutdown_test

import (
	"sync"
	"testing"
	"time"

	"csv-flashcards/internal/logger"
	"csv-flashcards/internal/shutdown"

	"github.com/stretchr/testify/assert"
)

func TestShutdown_ReverseOrder(t *testing.T) {
	m := shutdown.NewManager(logger.Nop())

	var mu sync.Mutex
	var order []string
	record := func(name string) shutdown.Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	m.Register("controller", record("controller"))
	m.Register("window", record("window"))
	m.Shutdown()

	assert.Equal(t, []string{"window", "controller"}, order)
}

func TestShutdown_RunsOnce(t *testing.T) {
	m := shutdown.NewManager(logger.Nop())

	calls := 0
	m.Register("counter", shutdown.Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel should be closed")
	}
}

func TestShutdown_TimeoutDoesNotBlock(t *testing.T) {
	m := shutdown.NewManager(logger.Nop())
	m.SetTimeout(20 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	m.Register("stuck", shutdown.Func(func() { <-release }))

	finished := make(chan struct{})
	go func() {
		m.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown blocked on a stuck component")
	}
}
