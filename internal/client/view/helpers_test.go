package view

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

const waitTimeout = time.Second

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runLoop(t *testing.T) *MainLoop {
	t.Helper()
	loop := NewMainLoop()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = loop.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return loop
}

func newNavigator(t *testing.T, loop *MainLoop) *Navigator {
	t.Helper()
	return NewNavigator(context.Background(), discard(), loop)
}

// eventually polls cond on the loop.
func eventually(t *testing.T, loop *MainLoop, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(waitTimeout)
	for time.Now().Before(deadline) {
		var ok bool
		loop.Do(func() { ok = cond() })
		if ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s: %s", waitTimeout, msg)
}
