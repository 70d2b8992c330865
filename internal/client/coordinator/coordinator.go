package coordinator

import (
	"log/slog"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/client/repository"
	"github.com/alexandernizov/mogakco/internal/client/view"
)

// Backend is every RPC the client issues.
type Backend interface {
	remote.AuthBackend
	remote.DocumentBackend
	remote.ChatBackend
}

// Dependencies are shared by all coordinators of one process.
type Dependencies struct {
	Log       *slog.Logger
	Backend   Backend
	Local     repository.LocalUserDataSource
	Session   *remote.Session
	PageSize  int
	Bounds    view.Rect
	Navigator *view.Navigator
	Loop      view.Dispatcher
}

// navigate runs fn on the main loop, where the navigator lives.
func (d Dependencies) navigate(fn func(nav *view.Navigator)) {
	d.Loop.Dispatch(func() { fn(d.Navigator) })
}
