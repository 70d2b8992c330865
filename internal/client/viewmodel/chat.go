package viewmodel

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/pkg/async"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

type ChatSidebarMenu int

const (
	StudyInfo ChatSidebarMenu = iota
	MemberInfo
	ExitStudy
)

var sidebarTitles = map[ChatSidebarMenu]string{
	StudyInfo:  "스터디 정보",
	MemberInfo: "참여자 정보",
	ExitStudy:  "채팅방 나가기",
}

func (m ChatSidebarMenu) String() string {
	return sidebarTitles[m]
}

func AllChatSidebarMenus() []ChatSidebarMenu {
	return []ChatSidebarMenu{StudyInfo, MemberInfo, ExitStudy}
}

type ChatUseCase interface {
	Fetch(ctx context.Context, chatRoomID string, before domain.ChatCursor, limit int) ([]domain.Chat, error)
	Send(ctx context.Context, chat domain.Chat, chatRoomID string) (domain.Chat, error)
}

type ChatCoordinator interface {
	PopScreen()
}

type ChatInput struct {
	BackTap         <-chan struct{}
	MenuTap         <-chan struct{}
	SidebarSelected <-chan ChatSidebarMenu
	SendTap         <-chan struct{}
	Text            <-chan string
	Pagination      <-chan struct{}
}

type ChatOutput struct {
	ShowSidebar     <-chan struct{}
	SelectedSidebar <-chan ChatSidebarMenu
	RefreshFinished <-chan struct{}
	SendMessage     <-chan struct{}
	Messages        <-chan []domain.Chat
}

type ChatViewModel struct {
	log         *slog.Logger
	chatRoomID  string
	pageSize    int
	coordinator ChatCoordinator
	chatUseCase ChatUseCase
	messages    *async.Relay[[]domain.Chat]
	now         func() time.Time
}

func NewChatViewModel(log *slog.Logger, chatRoomID string, pageSize int, coordinator ChatCoordinator, chatUseCase ChatUseCase) *ChatViewModel {
	return &ChatViewModel{
		log:         log.With(slog.String("room", chatRoomID)),
		chatRoomID:  chatRoomID,
		pageSize:    pageSize,
		coordinator: coordinator,
		chatUseCase: chatUseCase,
		messages:    async.NewRelay([]domain.Chat{}),
		now:         time.Now,
	}
}

// Transform wires the inputs to the outputs for the lifetime of scope. The
// first page of messages is requested right away.
func (vm *ChatViewModel) Transform(scope *async.Scope, in ChatInput) ChatOutput {
	showSidebar := make(chan struct{}, 1)
	selectedSidebar := make(chan ChatSidebarMenu, 1)
	refreshFinished := make(chan struct{}, 1)
	sendMessage := make(chan struct{}, 1)

	scope.Go(func(ctx context.Context) error {
		return async.Each(ctx, in.BackTap, func(struct{}) {
			vm.coordinator.PopScreen()
		})
	})

	scope.Go(func(ctx context.Context) error {
		return async.Each(ctx, in.MenuTap, func(struct{}) {
			async.Send(ctx, showSidebar, struct{}{})
		})
	})

	scope.Go(func(ctx context.Context) error {
		return async.Each(ctx, in.SidebarSelected, func(menu ChatSidebarMenu) {
			async.Send(ctx, selectedSidebar, menu)
		})
	})

	initial := async.Go(scope.Context(), func(ctx context.Context) ([]domain.Chat, error) {
		return vm.chatUseCase.Fetch(ctx, vm.chatRoomID, domain.ChatCursor{}, vm.pageSize)
	})

	// Requests that arrive while a page is loading collapse into one.
	pending := make(chan struct{}, 1)
	scope.Go(func(ctx context.Context) error {
		return async.Each(ctx, in.Pagination, func(struct{}) {
			select {
			case pending <- struct{}{}:
			default:
			}
		})
	})

	// Older pages are only requested once the latest page is in place, so
	// both never start from the same cursor.
	scope.Go(func(ctx context.Context) error {
		page, err := initial.Await(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case err != nil:
			vm.log.Warn("can't load messages", sl.Err(err))
		default:
			vm.prepend(page)
		}

		return async.Each(ctx, pending, func(struct{}) {
			vm.loadOlder(ctx)
			async.Send(ctx, refreshFinished, struct{}{})
		})
	})

	scope.Go(func(ctx context.Context) error {
		var text string
		for {
			select {
			case t, ok := <-in.Text:
				if !ok {
					in.Text = nil
					continue
				}
				text = t
			case _, ok := <-in.SendTap:
				if !ok {
					return nil
				}
				vm.send(scope, text, sendMessage)
			case <-ctx.Done():
				return nil
			}
		}
	})

	return ChatOutput{
		ShowSidebar:     showSidebar,
		SelectedSidebar: selectedSidebar,
		RefreshFinished: refreshFinished,
		SendMessage:     sendMessage,
		Messages:        vm.messages.Subscribe(scope.Context()),
	}
}

// loadOlder prepends the page before the oldest loaded message. Failures are
// only logged; the caller signals the end of the refresh either way.
func (vm *ChatViewModel) loadOlder(ctx context.Context) {
	var before domain.ChatCursor
	if current := vm.messages.Value(); len(current) > 0 {
		before = current[0].Cursor()
	}

	page, err := vm.chatUseCase.Fetch(ctx, vm.chatRoomID, before, vm.pageSize)
	if err != nil {
		vm.log.Warn("can't load older messages", sl.Err(err))
		return
	}
	vm.prepend(page)
}

// prepend puts page in front of the loaded messages, skipping any message
// that is already shown.
func (vm *ChatViewModel) prepend(page []domain.Chat) {
	vm.messages.Update(func(current []domain.Chat) []domain.Chat {
		seen := make(map[string]struct{}, len(current))
		for _, c := range current {
			if c.ID != "" {
				seen[c.ID] = struct{}{}
			}
		}

		merged := make([]domain.Chat, 0, len(page)+len(current))
		for _, c := range page {
			if _, ok := seen[c.ID]; ok && c.ID != "" {
				continue
			}
			merged = append(merged, c)
		}
		return append(merged, current...)
	})
}

func (vm *ChatViewModel) send(scope *async.Scope, text string, sent chan<- struct{}) {
	if strings.TrimSpace(text) == "" {
		return
	}

	fromCurrentUser := true
	chat := domain.Chat{Message: text, Date: vm.now(), IsFromCurrentUser: &fromCurrentUser}
	result := async.Go(scope.Context(), func(ctx context.Context) (domain.Chat, error) {
		return vm.chatUseCase.Send(ctx, chat, vm.chatRoomID)
	})
	shown := async.Then(scope.Context(), result, func(_ context.Context, stored domain.Chat) (struct{}, error) {
		vm.messages.Update(func(current []domain.Chat) []domain.Chat {
			return append(append(make([]domain.Chat, 0, len(current)+1), current...), stored)
		})
		return struct{}{}, nil
	})

	scope.Go(func(ctx context.Context) error {
		if _, err := shown.Await(ctx); err != nil {
			if ctx.Err() == nil {
				vm.log.Warn("can't send message", sl.Err(err))
			}
			return nil
		}
		async.Send(ctx, sent, struct{}{})
		return nil
	})
}
