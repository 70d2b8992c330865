package async

import (
	"context"
	"sync"
)

// Future is the eventual result of a single asynchronous call. It resolves
// exactly once, with either a value or an error.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Go runs fn in its own goroutine and returns a future for its result.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		val, err := fn(ctx)
		f.resolve(val, err)
	}()
	return f
}

func (f *Future[T]) resolve(val T, err error) {
	f.once.Do(func() {
		f.val, f.err = val, err
		close(f.done)
	})
}

// Await blocks until the future resolves or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then chains fn onto f. The returned future fails with f's error without
// calling fn.
func Then[T, R any](ctx context.Context, f *Future[T], fn func(ctx context.Context, val T) (R, error)) *Future[R] {
	return Go(ctx, func(ctx context.Context) (R, error) {
		val, err := f.Await(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(ctx, val)
	})
}
