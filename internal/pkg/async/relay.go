package async

import (
	"context"
	"sync"
)

// Relay holds a current value and hands it to subscribers, first on
// subscription and then on every Accept. Slow subscribers only see the
// latest value.
type Relay[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[int]chan T
	next  int
}

func NewRelay[T any](initial T) *Relay[T] {
	return &Relay[T]{value: initial, subs: make(map[int]chan T)}
}

func (r *Relay[T]) Value() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

func (r *Relay[T]) Accept(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.value = v
	for _, ch := range r.subs {
		offerLatest(ch, v)
	}
}

// Update replaces the value with fn(current) atomically.
func (r *Relay[T]) Update(fn func(T) T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.value = fn(r.value)
	for _, ch := range r.subs {
		offerLatest(ch, r.value)
	}
	return r.value
}

// Subscribe returns a channel that receives the current value immediately
// and each later one. The channel is closed when ctx is done.
func (r *Relay[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	r.mu.Lock()
	id := r.next
	r.next++
	r.subs[id] = ch
	ch <- r.value
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		delete(r.subs, id)
		close(ch)
		r.mu.Unlock()
	}()

	return ch
}

func offerLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
