package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture_Await(t *testing.T) {
	tests := []struct {
		name    string
		val     int
		err     error
		wantErr bool
	}{
		{name: "value", val: 42},
		{name: "error", err: errors.New("backend is down"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Go(context.Background(), func(context.Context) (int, error) {
				return tt.val, tt.err
			})

			got, err := f.Await(context.Background())

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.val, got)
		})
	}
}

func TestFuture_AwaitCanceled(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	f := Go(context.Background(), func(context.Context) (int, error) {
		<-block
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestThen(t *testing.T) {
	ctx := context.Background()
	var called atomic.Bool

	created := Go(ctx, func(context.Context) (string, error) { return "id", nil })
	ok := Then(ctx, created, func(_ context.Context, id string) (string, error) {
		return id + "-doc", nil
	})
	got, err := ok.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "id-doc", got)

	rejected := Go(ctx, func(context.Context) (string, error) { return "", errors.New("create failed") })
	failed := Then(ctx, rejected, func(context.Context, string) (string, error) {
		called.Store(true)
		return "", nil
	})
	_, err = failed.Await(ctx)
	assert.EqualError(t, err, "create failed")
	assert.False(t, called.Load())
}

func TestRelay_SubscribeGetsCurrentThenUpdates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRelay([]string{})

	ch := r.Subscribe(ctx)
	assert.Equal(t, []string{}, <-ch)

	r.Accept([]string{"a"})
	assert.Equal(t, []string{"a"}, <-ch)

	r.Update(func(v []string) []string { return append(v, "b") })
	assert.Equal(t, []string{"a", "b"}, <-ch)
	assert.Equal(t, []string{"a", "b"}, r.Value())

	cancel()
	_, open := <-ch
	for open {
		_, open = <-ch
	}
	r.Accept([]string{"after"})
}

func TestRelay_SlowSubscriberSeesLatest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := NewRelay(0)

	ch := r.Subscribe(ctx)
	for i := 1; i <= 10; i++ {
		r.Accept(i)
	}

	assert.Equal(t, 10, <-ch)
}

func TestScope_DisposeWaitsForGoroutines(t *testing.T) {
	s := NewScope(context.Background())
	var stopped atomic.Int32

	for i := 0; i < 3; i++ {
		s.Go(func(ctx context.Context) error {
			<-ctx.Done()
			stopped.Add(1)
			return nil
		})
	}

	require.NoError(t, s.Dispose())
	assert.Equal(t, int32(3), stopped.Load())
	assert.NoError(t, s.Dispose())

	select {
	case <-s.Context().Done():
	default:
		t.Fatal("scope context should be done after Dispose")
	}
}

func TestScope_ErrorCancelsSiblings(t *testing.T) {
	s := NewScope(context.Background())
	boom := errors.New("boom")

	s.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	s.Go(func(context.Context) error { return boom })

	select {
	case <-s.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("failed goroutine should cancel the scope")
	}
	assert.ErrorIs(t, s.Dispose(), boom)
}

func TestEach_StopsOnClose(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	var got []int
	require.NoError(t, Each(context.Background(), ch, func(v int) { got = append(got, v) }))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSend_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, Send(ctx, make(chan int), 1))
}
