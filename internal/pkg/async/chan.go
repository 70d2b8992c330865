package async

import "context"

// Send delivers v unless ctx ends first.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	case <-ctx.Done():
		return false
	}
}

// Each calls fn for every value on ch until ch is closed or ctx ends.
func Each[T any](ctx context.Context, ch <-chan T, fn func(T)) error {
	if ch == nil {
		return nil
	}
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return nil
			}
			fn(v)
		case <-ctx.Done():
			return nil
		}
	}
}
