package viewmodel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/stretchr/testify/assert"
)

type fakeChatRoomListUseCase struct {
	calls atomic.Int32
	rooms []domain.ChatRoom
	err   error
	// hold keeps every load after the first pending until closed.
	hold chan struct{}
}

func (f *fakeChatRoomListUseCase) ChatRooms(ctx context.Context) ([]domain.ChatRoom, error) {
	if f.calls.Add(1) > 1 && f.hold != nil {
		select {
		case <-f.hold:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.rooms, f.err
}

func TestChatListViewModel_LoadAndSelect(t *testing.T) {
	uc := &fakeChatRoomListUseCase{rooms: []domain.ChatRoom{{ID: "r1"}, {ID: "r2"}}}
	spy := newCoordinatorSpy()
	refresh, selected := make(chan struct{}), make(chan domain.ChatRoom)
	out := NewChatListViewModel(discard(), spy, uc).Transform(newScope(t), ChatListInput{Refresh: refresh, Selected: selected})

	rooms := recvUntil(t, out.ChatRooms, func(r []domain.ChatRoom) bool { return len(r) == 2 })
	assert.Equal(t, "r2", rooms[1].ID)

	refresh <- struct{}{}
	recv(t, out.RefreshFinished)
	assert.Equal(t, int32(2), uc.calls.Load())

	selected <- rooms[1]
	assert.Equal(t, "ShowChatDetail", recv(t, spy.event))
	assert.Equal(t, []string{"ShowChatDetail"}, spy.Calls())
}

func TestChatListViewModel_LoadFailure(t *testing.T) {
	backendErr := errors.New("unauthenticated")
	out := NewChatListViewModel(discard(), newCoordinatorSpy(), &fakeChatRoomListUseCase{err: backendErr}).
		Transform(newScope(t), ChatListInput{})

	assert.Equal(t, backendErr, recv(t, out.Failed))
}

func TestChatListViewModel_RefreshWhileLoading(t *testing.T) {
	uc := &fakeChatRoomListUseCase{rooms: []domain.ChatRoom{{ID: "r1"}}, hold: make(chan struct{})}
	spy := newCoordinatorSpy()
	refresh, selected := make(chan struct{}), make(chan domain.ChatRoom)
	out := NewChatListViewModel(discard(), spy, uc).Transform(newScope(t), ChatListInput{Refresh: refresh, Selected: selected})
	recvUntil(t, out.ChatRooms, func(r []domain.ChatRoom) bool { return len(r) == 1 })

	refresh <- struct{}{}
	assert.Eventually(t, func() bool { return uc.calls.Load() == 2 }, waitTimeout, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		refresh <- struct{}{}
		selected <- domain.ChatRoom{ID: "r1"}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("refresh blocked behind the pending load")
	}
	assert.Equal(t, "ShowChatDetail", recv(t, spy.event))

	close(uc.hold)
	recv(t, out.RefreshFinished)
}
