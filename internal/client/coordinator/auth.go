package coordinator

import (
	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/client/repository"
	"github.com/alexandernizov/mogakco/internal/client/usecase"
	"github.com/alexandernizov/mogakco/internal/client/view"
	"github.com/alexandernizov/mogakco/internal/client/viewmodel"
)

// AuthDelegate is told when the user has signed in or signed up.
type AuthDelegate interface {
	AuthFinished()
}

type AuthCoordinator struct {
	deps     Dependencies
	delegate AuthDelegate
}

func NewAuthCoordinator(deps Dependencies, delegate AuthDelegate) *AuthCoordinator {
	return &AuthCoordinator{deps: deps, delegate: delegate}
}

func (c *AuthCoordinator) ShowLogin() {
	vm := viewmodel.NewLoginViewModel(c.deps.Log, c, usecase.NewLoginUseCase(c.authRepository()))
	controller := view.NewLoginController(vm)
	c.deps.navigate(func(nav *view.Navigator) { nav.SetRoot(controller) })
}

func (c *AuthCoordinator) ShowSignup() {
	vm := viewmodel.NewSignupViewModel(c.deps.Log, c, usecase.NewSignupUseCase(c.authRepository()))
	controller := view.NewSignupController(vm)
	c.deps.navigate(func(nav *view.Navigator) { nav.Push(controller) })
}

func (c *AuthCoordinator) PopScreen() {
	c.deps.navigate(func(nav *view.Navigator) { nav.Pop() })
}

func (c *AuthCoordinator) Finish() {
	c.delegate.AuthFinished()
}

func (c *AuthCoordinator) authRepository() *repository.AuthRepository {
	authService := remote.NewAuthService(c.deps.Log, c.deps.Backend, c.deps.Backend, c.deps.Session)
	return repository.NewAuthRepository(c.deps.Log, authService, c.deps.Local, c.deps.Session)
}
