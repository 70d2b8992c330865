package viewmodel

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alexandernizov/mogakco/internal/pkg/async"
)

const waitTimeout = time.Second

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newScope(t *testing.T) *async.Scope {
	t.Helper()
	s := async.NewScope(context.Background())
	t.Cleanup(func() { _ = s.Dispose() })
	return s
}

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(waitTimeout):
		t.Fatalf("no value within %s", waitTimeout)
	}
	var zero T
	return zero
}

func recvNone[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected value %v", v)
	case <-time.After(50 * time.Millisecond):
	}
}

// recvUntil reads ch until ok reports true for a value.
func recvUntil[T any](t *testing.T, ch <-chan T, ok func(T) bool) T {
	t.Helper()
	deadline := time.After(waitTimeout)
	for {
		select {
		case v := <-ch:
			if ok(v) {
				return v
			}
		case <-deadline:
			t.Fatalf("condition not met within %s", waitTimeout)
		}
	}
}

type coordinatorSpy struct {
	mu    sync.Mutex
	calls []string
	args  []string
	event chan string
}

func newCoordinatorSpy() *coordinatorSpy {
	return &coordinatorSpy{event: make(chan string, 16)}
}

func (c *coordinatorSpy) record(call, arg string) {
	c.mu.Lock()
	c.calls = append(c.calls, call)
	c.args = append(c.args, arg)
	c.mu.Unlock()
	c.event <- call
}

func (c *coordinatorSpy) PopScreen()                   { c.record("PopScreen", "") }
func (c *coordinatorSpy) ShowSignup()                  { c.record("ShowSignup", "") }
func (c *coordinatorSpy) Finish()                      { c.record("Finish", "") }
func (c *coordinatorSpy) ShowChatDetail(roomID string) { c.record("ShowChatDetail", roomID) }

func (c *coordinatorSpy) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}
