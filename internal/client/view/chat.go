package view

import (
	"context"
	"time"

	"github.com/alexandernizov/mogakco/internal/client/viewmodel"
	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/pkg/async"
)

const (
	ChatTitle = "채팅"

	ComposerHeight    = 100.0
	keyboardAnimation = 500 * time.Millisecond
	sidebarAnimation  = 300 * time.Millisecond
)

// ChatScreen is the layout state of a chat room. Exported fields are owned by
// the main loop; user events may be raised from any goroutine.
type ChatScreen struct {
	Bounds           Rect
	BackButtonHidden bool

	Composer     Rect
	ComposerText string
	List         *MessageList
	Messages     []domain.Chat

	SidebarMenus     []viewmodel.ChatSidebarMenu
	Sidebar          Rect
	DimOverlay       Rect
	DimOverlayHidden bool

	LastTransition Transition

	keyboardSeen bool

	in       inbox
	back     chan struct{}
	menu     chan struct{}
	selected chan viewmodel.ChatSidebarMenu
	send     chan struct{}
	text     chan string
	refresh  chan struct{}
}

func NewChatScreen(bounds Rect) *ChatScreen {
	s := &ChatScreen{
		Bounds:           bounds,
		List:             NewMessageList(),
		SidebarMenus:     viewmodel.AllChatSidebarMenus(),
		Sidebar:          Rect{X: bounds.Width, Width: bounds.Width, Height: bounds.Height},
		DimOverlay:       bounds,
		DimOverlayHidden: true,
		back:             make(chan struct{}),
		menu:             make(chan struct{}),
		selected:         make(chan viewmodel.ChatSidebarMenu),
		send:             make(chan struct{}),
		text:             make(chan string),
		refresh:          make(chan struct{}),
	}
	s.layoutComposer(0)
	s.layoutList(0)
	return s
}

func (s *ChatScreen) Title() string {
	return ChatTitle
}

func (s *ChatScreen) TapBack() {
	emit(&s.in, s.back, struct{}{})
}

func (s *ChatScreen) TapMenu() {
	emit(&s.in, s.menu, struct{}{})
}

func (s *ChatScreen) SelectSidebarRow(menu viewmodel.ChatSidebarMenu) {
	emit(&s.in, s.selected, menu)
}

func (s *ChatScreen) TypeText(text string) {
	if s.in.dispatch(func() { s.ComposerText = text }) {
		emit(&s.in, s.text, text)
	}
}

func (s *ChatScreen) TapSend() {
	emit(&s.in, s.send, struct{}{})
}

func (s *ChatScreen) PullToRefresh() {
	if s.in.dispatch(func() { s.List.Refreshing = true }) {
		emit(&s.in, s.refresh, struct{}{})
	}
}

// KeyboardHeightChanged reports the visible keyboard height. The first report
// is the initial state and leaves the layout alone.
func (s *ChatScreen) KeyboardHeightChanged(height float64) {
	s.in.dispatch(func() { s.keyboardHeightChanged(height) })
}

// TapDimOverlay closes the sidebar without selecting a row. Unlike a row
// selection it also resets the sidebar width to the full screen.
func (s *ChatScreen) TapDimOverlay() {
	s.in.dispatch(func() { s.hideSidebar(s.Bounds.Width) })
}

// NewChatController binds a chat screen to vm.
func NewChatController(vm *viewmodel.ChatViewModel, bounds Rect) *Controller {
	s := NewChatScreen(bounds)
	return NewController(s, s.bind(vm))
}

func (s *ChatScreen) bind(vm *viewmodel.ChatViewModel) BindFunc {
	return func(scope *async.Scope, d Dispatcher) {
		s.in.open(scope.Context(), d)

		out := vm.Transform(scope, viewmodel.ChatInput{
			BackTap:         s.back,
			MenuTap:         s.menu,
			SidebarSelected: s.selected,
			SendTap:         s.send,
			Text:            s.text,
			Pagination:      s.refresh,
		})

		scope.Go(func(ctx context.Context) error {
			return s.followMessages(ctx, d, out.Messages, out.SendMessage)
		})
		forward(scope, d, out.ShowSidebar, func(struct{}) {
			s.showSidebar()
		})
		forward(scope, d, out.SelectedSidebar, func(viewmodel.ChatSidebarMenu) {
			s.hideSidebar(s.Sidebar.Width)
		})
		forward(scope, d, out.RefreshFinished, func(struct{}) {
			s.List.Refreshing = false
		})
	}
}

// followMessages applies message lists and sent notifications in one order.
// The list holding a sent chat is published before the notification, so it
// is drained first and the scroll lands on the new last item.
func (s *ChatScreen) followMessages(ctx context.Context, d Dispatcher, messages <-chan []domain.Chat, sent <-chan struct{}) error {
	reload := func(chats []domain.Chat) {
		d.Dispatch(func() {
			s.Messages = chats
			s.List.Reload(chats)
		})
	}

	for {
		select {
		case chats, ok := <-messages:
			if !ok {
				return nil
			}
			reload(chats)
		case <-sent:
			select {
			case chats, ok := <-messages:
				if ok {
					reload(chats)
				}
			default:
			}
			d.Dispatch(func() {
				s.ComposerText = ""
				s.List.ScrollToLast()
			})
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *ChatScreen) keyboardHeightChanged(height float64) {
	if !s.keyboardSeen {
		s.keyboardSeen = true
		return
	}
	s.layoutComposer(height)
	s.layoutList(height)
}

func (s *ChatScreen) layoutComposer(keyboard float64) {
	if keyboard == 0 {
		s.Composer = Rect{Y: s.Bounds.MaxY() - ComposerHeight, Width: s.Bounds.Width, Height: ComposerHeight}
		s.LastTransition = Immediate
		return
	}
	s.Composer = Rect{Y: s.Bounds.MaxY() - keyboard - ComposerHeight, Width: s.Bounds.Width, Height: ComposerHeight}
	s.LastTransition = Animated(keyboardAnimation)
}

// layoutList must run after layoutComposer.
func (s *ChatScreen) layoutList(keyboard float64) {
	if keyboard == 0 {
		s.List.Frame = Rect{Width: s.Bounds.Width, Height: s.Bounds.Height - ComposerHeight}
	} else {
		s.List.Frame = Rect{Width: s.Bounds.Width, Height: s.Composer.Y}
	}
	s.List.BottomInset = s.Bounds.MaxY() - s.List.Frame.MaxY()
}

func (s *ChatScreen) showSidebar() {
	s.BackButtonHidden = true
	s.DimOverlayHidden = false

	w := s.Bounds.Width
	s.Sidebar = Rect{X: w * 2 / 3, Width: w / 3, Height: s.Sidebar.Height}
	s.DimOverlay = Rect{Width: w * 2 / 3, Height: s.Bounds.Height}
	s.LastTransition = Animated(sidebarAnimation)
}

func (s *ChatScreen) hideSidebar(width float64) {
	s.DimOverlayHidden = true
	s.DimOverlay = s.Bounds
	s.BackButtonHidden = false

	s.Sidebar = Rect{X: s.Bounds.Width, Width: width, Height: s.Sidebar.Height}
	s.LastTransition = Animated(sidebarAnimation)
}
