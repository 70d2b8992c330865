package view

import (
	"context"
	"sync"

	"github.com/alexandernizov/mogakco/internal/pkg/async"
)

// inbox forwards user events while the screen is attached. Events arriving
// before attach or after detach are dropped.
type inbox struct {
	mu  sync.Mutex
	ctx context.Context
	d   Dispatcher
}

func (i *inbox) open(ctx context.Context, d Dispatcher) {
	i.mu.Lock()
	i.ctx, i.d = ctx, d
	i.mu.Unlock()
}

func (i *inbox) target() (context.Context, Dispatcher) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.ctx == nil || i.ctx.Err() != nil {
		return nil, nil
	}
	return i.ctx, i.d
}

// dispatch runs fn on the main loop.
func (i *inbox) dispatch(fn func()) bool {
	_, d := i.target()
	if d == nil {
		return false
	}
	d.Dispatch(fn)
	return true
}

// emit hands v to the view model and blocks until it is taken.
func emit[T any](i *inbox, ch chan T, v T) bool {
	ctx, _ := i.target()
	if ctx == nil {
		return false
	}
	return async.Send(ctx, ch, v)
}

// forward applies every value from ch to the screen on the main loop.
func forward[T any](scope *async.Scope, d Dispatcher, ch <-chan T, apply func(T)) {
	scope.Go(func(ctx context.Context) error {
		return async.Each(ctx, ch, func(v T) {
			d.Dispatch(func() { apply(v) })
		})
	})
}
