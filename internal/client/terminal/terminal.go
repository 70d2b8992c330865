package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/alexandernizov/mogakco/internal/client/view"
	"github.com/alexandernizov/mogakco/internal/domain"
)

var ErrQuit = errors.New("quit")

// Session is what the terminal needs from the app coordinator.
type Session interface {
	Logout() error
}

// Terminal feeds typed commands to the screen on top of the navigation stack
// and redraws it whenever the main loop goes idle.
type Terminal struct {
	log  *slog.Logger
	loop *view.MainLoop
	nav  *view.Navigator
	app  Session

	mu   sync.Mutex
	out  io.Writer
	last string
}

func New(log *slog.Logger, loop *view.MainLoop, nav *view.Navigator, app Session, out io.Writer) *Terminal {
	t := &Terminal{log: log, loop: loop, nav: nav, app: app, out: out}
	loop.OnIdle(t.redraw)
	return t
}

// redraw runs on the main loop and prints the top screen if it changed.
func (t *Terminal) redraw() {
	top := t.nav.Top()
	if top == nil {
		return
	}
	frame := Render(top.Screen())

	t.mu.Lock()
	defer t.mu.Unlock()
	if frame == t.last {
		return
	}
	t.last = frame
	fmt.Fprint(t.out, frame)
}

func (t *Terminal) println(a ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, a...)
}

// Run reads commands from in until it is exhausted, ctx ends or the user
// quits.
func (t *Terminal) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			err := t.Execute(line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				t.println("error:", err)
			}
		}
	}
}

// Execute runs one command line against the current screen.
func (t *Terminal) Execute(line string) error {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "":
		return nil
	case "quit", "exit":
		return ErrQuit
	case "help":
		t.println(t.help())
		return nil
	case "logout":
		return t.app.Logout()
	}

	var screen view.Screen
	t.loop.Do(func() {
		if top := t.nav.Top(); top != nil {
			screen = top.Screen()
		}
	})

	switch s := screen.(type) {
	case *view.LoginScreen:
		return t.login(s, name, arg)
	case *view.SignupScreen:
		return t.signup(s, name, arg)
	case *view.ChatListScreen:
		return t.chatList(s, name, arg)
	case *view.ChatScreen:
		return t.chat(s, name, arg)
	}
	return fmt.Errorf("unknown command %q", name)
}

func (t *Terminal) login(s *view.LoginScreen, name, arg string) error {
	switch name {
	case "email":
		s.TypeEmail(arg)
	case "password":
		s.TypePassword(arg)
	case "login":
		s.TapLogin()
	case "signup":
		s.TapSignup()
	default:
		return fmt.Errorf("unknown command %q", name)
	}
	return nil
}

func (t *Terminal) signup(s *view.SignupScreen, name, arg string) error {
	switch name {
	case "set":
		key, value, _ := strings.Cut(arg, " ")
		for _, f := range view.AllSignupFields() {
			if f.String() == key {
				s.Type(f, strings.TrimSpace(value))
				return nil
			}
		}
		return fmt.Errorf("unknown field %q", key)
	case "submit":
		s.TapSignup()
	case "back":
		s.TapBack()
	default:
		return fmt.Errorf("unknown command %q", name)
	}
	return nil
}

func (t *Terminal) chatList(s *view.ChatListScreen, name, arg string) error {
	switch name {
	case "refresh":
		s.PullToRefresh()
	case "open":
		var rooms []domain.ChatRoom
		t.loop.Do(func() { rooms = s.Rooms })
		n, err := row(arg, len(rooms))
		if err != nil {
			return err
		}
		s.SelectRoom(rooms[n])
	default:
		return fmt.Errorf("unknown command %q", name)
	}
	return nil
}

func (t *Terminal) chat(s *view.ChatScreen, name, arg string) error {
	switch name {
	case "say":
		s.TypeText(arg)
		s.TapSend()
	case "type":
		s.TypeText(arg)
	case "send":
		s.TapSend()
	case "more":
		s.PullToRefresh()
	case "menu":
		s.TapMenu()
	case "select":
		n, err := row(arg, len(s.SidebarMenus))
		if err != nil {
			return err
		}
		s.SelectSidebarRow(s.SidebarMenus[n])
	case "close":
		s.TapDimOverlay()
	case "keyboard":
		h, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("keyboard height: %w", err)
		}
		s.KeyboardHeightChanged(h)
	case "back":
		s.TapBack()
	default:
		return fmt.Errorf("unknown command %q", name)
	}
	return nil
}

// row parses a 1-based row number into an index.
func row(arg string, count int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("row number: %w", err)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("row %d out of range 1..%d", n, count)
	}
	return n - 1, nil
}

func (t *Terminal) help() string {
	return strings.Join([]string{
		"login:  email <v> | password <v> | login | signup",
		"signup: set <field> <value> | submit | back",
		"rooms:  refresh | open <n>",
		"chat:   say <text> | type <text> | send | more | menu | select <n> | close | keyboard <h> | back",
		"any:    help | logout | quit",
	}, "\n")
}
