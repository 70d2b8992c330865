package viewmodel

import (
	"context"
	"log/slog"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/pkg/async"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

type ChatRoomListUseCase interface {
	ChatRooms(ctx context.Context) ([]domain.ChatRoom, error)
}

type ChatListCoordinator interface {
	ShowChatDetail(chatRoomID string)
}

type ChatListInput struct {
	Refresh  <-chan struct{}
	Selected <-chan domain.ChatRoom
}

type ChatListOutput struct {
	ChatRooms       <-chan []domain.ChatRoom
	RefreshFinished <-chan struct{}
	Failed          <-chan error
}

type ChatListViewModel struct {
	log                 *slog.Logger
	coordinator         ChatListCoordinator
	chatRoomListUseCase ChatRoomListUseCase
	chatRooms           *async.Relay[[]domain.ChatRoom]
}

func NewChatListViewModel(log *slog.Logger, coordinator ChatListCoordinator, chatRoomListUseCase ChatRoomListUseCase) *ChatListViewModel {
	return &ChatListViewModel{
		log:                 log,
		coordinator:         coordinator,
		chatRoomListUseCase: chatRoomListUseCase,
		chatRooms:           async.NewRelay([]domain.ChatRoom{}),
	}
}

// Transform loads the rooms once on bind and again on every refresh.
func (vm *ChatListViewModel) Transform(scope *async.Scope, in ChatListInput) ChatListOutput {
	refreshFinished := make(chan struct{}, 1)
	failed := make(chan error, 1)

	// Refreshes requested while a load is running collapse into one.
	pending := make(chan struct{}, 1)
	scope.Go(func(ctx context.Context) error {
		return async.Each(ctx, in.Refresh, func(struct{}) {
			select {
			case pending <- struct{}{}:
			default:
			}
		})
	})

	scope.Go(func(ctx context.Context) error {
		if err := vm.load(ctx); err != nil {
			async.Send(ctx, failed, err)
		}
		return async.Each(ctx, pending, func(struct{}) {
			if err := vm.load(ctx); err != nil {
				async.Send(ctx, failed, err)
			}
			async.Send(ctx, refreshFinished, struct{}{})
		})
	})

	scope.Go(func(ctx context.Context) error {
		return async.Each(ctx, in.Selected, func(room domain.ChatRoom) {
			vm.coordinator.ShowChatDetail(room.ID)
		})
	})

	return ChatListOutput{
		ChatRooms:       vm.chatRooms.Subscribe(scope.Context()),
		RefreshFinished: refreshFinished,
		Failed:          failed,
	}
}

func (vm *ChatListViewModel) load(ctx context.Context) error {
	rooms, err := vm.chatRoomListUseCase.ChatRooms(ctx)
	if err != nil {
		vm.log.Warn("can't load chat rooms", sl.Err(err))
		return err
	}
	vm.chatRooms.Accept(rooms)
	return nil
}
