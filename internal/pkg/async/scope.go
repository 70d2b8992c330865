package async

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Scope ties goroutines to the lifetime of their owner. Dispose cancels the
// scope context and waits for every goroutine started with Go.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
	once   sync.Once
	err    error
}

func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	group, ctx := errgroup.WithContext(ctx)
	return &Scope{ctx: ctx, cancel: cancel, group: group}
}

func (s *Scope) Context() context.Context {
	return s.ctx
}

// Go starts fn inside the scope. A non-nil error cancels the whole scope.
func (s *Scope) Go(fn func(ctx context.Context) error) {
	s.group.Go(func() error {
		return fn(s.ctx)
	})
}

// Dispose is idempotent and returns the first error a goroutine reported.
func (s *Scope) Dispose() error {
	s.once.Do(func() {
		s.cancel()
		s.err = s.group.Wait()
	})
	return s.err
}
