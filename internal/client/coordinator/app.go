package coordinator

import (
	"errors"
	"log/slog"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/client/repository"
	"github.com/alexandernizov/mogakco/internal/client/usecase"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

// AppCoordinator picks the first flow and switches to the chat tab once the
// user is signed in.
type AppCoordinator struct {
	deps    Dependencies
	auth    *AuthCoordinator
	chatTab *ChatTabCoordinator
	users   *usecase.UserUseCase
	logins  *usecase.LoginUseCase
}

func NewAppCoordinator(deps Dependencies) *AppCoordinator {
	app := &AppCoordinator{deps: deps, chatTab: NewChatTabCoordinator(deps)}
	app.auth = NewAuthCoordinator(deps, app)

	userRepository := repository.NewUserRepository(deps.Local, remote.NewUserDataSource(deps.Backend))
	app.users = usecase.NewUserUseCase(userRepository)
	app.logins = usecase.NewLoginUseCase(app.auth.authRepository())
	return app
}

// Start resumes a remembered session or shows the login screen.
func (a *AppCoordinator) Start() {
	const op = "coordinator.Start"
	log := a.deps.Log.With(slog.String("op", op))

	session, err := a.users.CurrentSession()
	switch {
	case err == nil && session.Token != "":
		log.Info("resuming session", slog.String("user", session.UserID))
		a.deps.Session.Set(session.UserID, session.Token)
		a.chatTab.Start()
	case err == nil, errors.Is(err, errs.ErrSessionNotFound):
		a.auth.ShowLogin()
	default:
		log.Warn("can't read local session", sl.Err(err))
		a.auth.ShowLogin()
	}
}

func (a *AppCoordinator) AuthFinished() {
	a.chatTab.Start()
}

// Logout forgets the signed-in user and returns to the login screen.
func (a *AppCoordinator) Logout() error {
	if err := a.logins.Logout(); err != nil {
		return err
	}
	a.deps.Session.Set("", "")
	a.auth.ShowLogin()
	return nil
}

func (a *AppCoordinator) ChatTab() *ChatTabCoordinator {
	return a.chatTab
}
