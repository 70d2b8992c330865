package coordinator

import (
	"log/slog"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/client/repository"
	"github.com/alexandernizov/mogakco/internal/client/usecase"
	"github.com/alexandernizov/mogakco/internal/client/view"
	"github.com/alexandernizov/mogakco/internal/client/viewmodel"
)

// ChatTabCoordinator owns the room list and the chat rooms opened from it.
type ChatTabCoordinator struct {
	deps Dependencies
	log  *slog.Logger
}

func NewChatTabCoordinator(deps Dependencies) *ChatTabCoordinator {
	return &ChatTabCoordinator{deps: deps, log: deps.Log.With(slog.String("coordinator", "chat_tab"))}
}

// Start replaces whatever is shown with the room list.
func (c *ChatTabCoordinator) Start() {
	c.deps.navigate(func(nav *view.Navigator) { nav.Close() })
	c.ShowChatList()
}

func (c *ChatTabCoordinator) ShowChatList() {
	controller := c.chatListController()
	c.deps.navigate(func(nav *view.Navigator) { nav.Push(controller) })
}

func (c *ChatTabCoordinator) ShowChatDetail(chatRoomID string) {
	c.log.Debug("opening chat room", slog.String("room", chatRoomID))

	chatDataSource := remote.NewChatDataSource(c.deps.Backend)
	userDataSource := remote.NewUserDataSource(c.deps.Backend)
	chatRepository := repository.NewChatRepository(c.deps.Log, chatDataSource, userDataSource, c.deps.Local)
	chatUseCase := usecase.NewChatUseCase(chatRepository)
	vm := viewmodel.NewChatViewModel(c.deps.Log, chatRoomID, c.deps.PageSize, c, chatUseCase)
	controller := view.NewChatController(vm, c.deps.Bounds)

	c.deps.navigate(func(nav *view.Navigator) { nav.Push(controller) })
}

func (c *ChatTabCoordinator) PopScreen() {
	c.deps.navigate(func(nav *view.Navigator) { nav.Pop() })
}

func (c *ChatTabCoordinator) chatListController() *view.Controller {
	chatRoomDataSource := remote.NewChatRoomDataSource(c.deps.Backend)
	chatRoomRepository := repository.NewChatRoomRepository(chatRoomDataSource)
	chatRoomListUseCase := usecase.NewChatRoomListUseCase(chatRoomRepository)
	vm := viewmodel.NewChatListViewModel(c.deps.Log, c, chatRoomListUseCase)
	return view.NewChatListController(vm)
}
