package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alexandernizov/mogakco/internal/client/coordinator"
	"github.com/alexandernizov/mogakco/internal/client/local"
	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/client/repository"
	"github.com/alexandernizov/mogakco/internal/client/terminal"
	"github.com/alexandernizov/mogakco/internal/client/usecase"
	"github.com/alexandernizov/mogakco/internal/client/view"
	"github.com/alexandernizov/mogakco/internal/config"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"github.com/alexandernizov/mogakco/internal/grpc"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

const usage = `usage: mogakco [-config path] [command]

commands:
  signup <email> <password> <name> [introduce]
  login <email> <password>
  logout
  whoami
  rooms
  create <studyID> [userID...]
  chat <roomID>

without a command the interactive client starts.`

func main() {
	//Config
	cfg, args := config.MustLoadClient()

	//Logger
	log := setupLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	//Local session
	store, err := local.Open(cfg.SessionPath)
	if err != nil {
		log.Error("can't open session store", sl.Err(err))
		os.Exit(1)
	}
	defer store.Close()

	session := remote.NewSession("", "")
	if saved, err := store.Load(); err == nil {
		session.Set(saved.UserID, saved.Token)
	}

	//Backend connection
	conn, err := grpc.Dial(cfg.ServerAddress, session)
	if err != nil {
		log.Error("can't connect to backend", sl.Err(err))
		os.Exit(1)
	}
	defer conn.Close()

	deps := coordinator.Dependencies{
		Log:      log,
		Backend:  grpc.NewClient(conn),
		Local:    store,
		Session:  session,
		PageSize: cfg.PageSize,
		Bounds:   view.DefaultBounds,
	}

	if len(args) == 0 {
		err = interactive(ctx, deps, "")
	} else {
		err = command(ctx, cfg, deps, args)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func command(ctx context.Context, cfg *config.ClientConfig, deps coordinator.Dependencies, args []string) error {
	if args[0] == "chat" && len(args) == 2 {
		return interactive(ctx, deps, args[1])
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	authService := remote.NewAuthService(deps.Log, deps.Backend, deps.Backend, deps.Session)
	authRepository := repository.NewAuthRepository(deps.Log, authService, deps.Local, deps.Session)
	chatRoomRepository := repository.NewChatRoomRepository(remote.NewChatRoomDataSource(deps.Backend))
	rooms := usecase.NewChatRoomListUseCase(chatRoomRepository)
	users := usecase.NewUserUseCase(repository.NewUserRepository(deps.Local, remote.NewUserDataSource(deps.Backend)))

	name, rest := args[0], args[1:]
	switch {
	case name == "signup" && len(rest) >= 3:
		req := remote.SignupRequest{Email: rest[0], Password: rest[1], Name: rest[2]}
		if len(rest) > 3 {
			req.Introduce = strings.Join(rest[3:], " ")
		}
		user, err := usecase.NewSignupUseCase(authRepository).Signup(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("signed up as %s (%s)\n", user.Name, user.ID)

	case name == "login" && len(rest) == 2:
		id, err := usecase.NewLoginUseCase(authRepository).Login(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s\n", id)

	case name == "logout" && len(rest) == 0:
		return usecase.NewLoginUseCase(authRepository).Logout()

	case name == "whoami" && len(rest) == 0:
		session, err := users.CurrentSession()
		if err != nil {
			return err
		}
		user, err := users.User(ctx, session.UserID)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s> (%s)\n", user.Name, user.Email, user.ID)

	case name == "rooms" && len(rest) == 0:
		list, err := rooms.ChatRooms(ctx)
		if err != nil {
			return err
		}
		for _, room := range list {
			fmt.Printf("%s\t%s\t%d members\n", room.ID, room.StudyID, len(room.UserIDs))
		}

	case name == "create" && len(rest) >= 1:
		room, err := rooms.CreateChatRoom(ctx, rest[0], rest[1:])
		if err != nil {
			return err
		}
		fmt.Printf("created room %s\n", room.ID)

	default:
		return errors.New(usage)
	}
	return nil
}

// interactive runs the terminal client until stdin ends or the user quits.
// A non-empty roomID opens that room on top of the room list.
func interactive(ctx context.Context, deps coordinator.Dependencies, roomID string) error {
	if roomID != "" {
		if _, err := deps.Local.Load(); errors.Is(err, errs.ErrSessionNotFound) {
			return errors.New("log in first")
		}
	}

	// The loop outlives ctx so the screens can still be closed on it after a
	// signal. Screen scopes hang off ctx and stop with it.
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()

	loop := view.NewMainLoop()
	deps.Loop = loop
	deps.Navigator = view.NewNavigator(ctx, deps.Log, loop)

	app := coordinator.NewAppCoordinator(deps)
	term := terminal.New(deps.Log, loop, deps.Navigator, app, os.Stdout)

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = loop.Run(loopCtx)
	}()

	if roomID == "" {
		app.Start()
	} else {
		app.ChatTab().Start()
		app.ChatTab().ShowChatDetail(roomID)
	}

	err := term.Run(ctx, os.Stdin)

	loop.Do(deps.Navigator.Close)
	stopLoop()
	<-loopDone
	return err
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	// stdout belongs to the terminal front-end.
	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		panic("unknown enviroment")
	}

	return log
}
