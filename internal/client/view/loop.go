package view

import (
	"context"
	"sync"
)

// Dispatcher runs functions on the goroutine that owns screen state.
type Dispatcher interface {
	Dispatch(fn func())
}

// MainLoop is the single goroutine allowed to touch screen state. Dispatch
// never blocks, so code running on the loop may dispose scopes whose
// goroutines are still dispatching.
type MainLoop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	onIdle func()
}

func NewMainLoop() *MainLoop {
	return &MainLoop{wake: make(chan struct{}, 1)}
}

func (m *MainLoop) Dispatch(fn func()) {
	m.mu.Lock()
	m.queue = append(m.queue, fn)
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// OnIdle registers fn to run on the loop each time the queue drains. It must
// be called before Run.
func (m *MainLoop) OnIdle(fn func()) {
	m.onIdle = fn
}

// Do runs fn on the loop and waits for it. It must not be called from the
// loop itself.
func (m *MainLoop) Do(fn func()) {
	done := make(chan struct{})
	m.Dispatch(func() {
		defer close(done)
		fn()
	})
	<-done
}

// Run executes dispatched functions in order until ctx is done.
func (m *MainLoop) Run(ctx context.Context) error {
	for {
		if m.drain() && m.onIdle != nil {
			m.onIdle()
		}
		select {
		case <-m.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// drain reports whether anything ran.
func (m *MainLoop) drain() bool {
	ran := false
	for {
		m.mu.Lock()
		if len(m.queue) == 0 {
			m.mu.Unlock()
			return ran
		}
		fn := m.queue[0]
		m.queue[0] = nil
		m.queue = m.queue[1:]
		m.mu.Unlock()

		fn()
		ran = true
	}
}
