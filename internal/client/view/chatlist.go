package view

import (
	"github.com/alexandernizov/mogakco/internal/client/viewmodel"
	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/pkg/async"
)

const ChatListTitle = "채팅 목록"

type ChatListScreen struct {
	Rooms      []domain.ChatRoom
	Refreshing bool
	Err        error

	in       inbox
	refresh  chan struct{}
	selected chan domain.ChatRoom
}

func NewChatListScreen() *ChatListScreen {
	return &ChatListScreen{
		refresh:  make(chan struct{}),
		selected: make(chan domain.ChatRoom),
	}
}

func (s *ChatListScreen) Title() string {
	return ChatListTitle
}

func (s *ChatListScreen) PullToRefresh() {
	if s.in.dispatch(func() { s.Refreshing = true }) {
		emit(&s.in, s.refresh, struct{}{})
	}
}

func (s *ChatListScreen) SelectRoom(room domain.ChatRoom) {
	emit(&s.in, s.selected, room)
}

func NewChatListController(vm *viewmodel.ChatListViewModel) *Controller {
	s := NewChatListScreen()
	return NewController(s, func(scope *async.Scope, d Dispatcher) {
		s.in.open(scope.Context(), d)

		out := vm.Transform(scope, viewmodel.ChatListInput{
			Refresh:  s.refresh,
			Selected: s.selected,
		})

		forward(scope, d, out.ChatRooms, func(rooms []domain.ChatRoom) {
			s.Rooms = rooms
			s.Err = nil
		})
		forward(scope, d, out.RefreshFinished, func(struct{}) {
			s.Refreshing = false
		})
		forward(scope, d, out.Failed, func(err error) {
			s.Err = err
		})
	})
}
