package viewmodel

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/alexandernizov/mogakco/internal/pkg/async"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

type LoginUseCase interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type LoginCoordinator interface {
	ShowSignup()
	Finish()
}

type LoginInput struct {
	Email     <-chan string
	Password  <-chan string
	LoginTap  <-chan struct{}
	SignupTap <-chan struct{}
}

type LoginOutput struct {
	LoggedIn <-chan string
	Failed   <-chan error
}

type LoginViewModel struct {
	log          *slog.Logger
	coordinator  LoginCoordinator
	loginUseCase LoginUseCase
	busy         atomic.Bool
}

func NewLoginViewModel(log *slog.Logger, coordinator LoginCoordinator, loginUseCase LoginUseCase) *LoginViewModel {
	return &LoginViewModel{log: log, coordinator: coordinator, loginUseCase: loginUseCase}
}

// Transform signs in with the latest email and password on every login tap.
// Each attempt yields exactly one account ID or one error. Taps made while an
// attempt is in flight are ignored.
func (vm *LoginViewModel) Transform(scope *async.Scope, in LoginInput) LoginOutput {
	loggedIn := make(chan string, 1)
	failed := make(chan error, 1)

	scope.Go(func(ctx context.Context) error {
		return async.Each(ctx, in.SignupTap, func(struct{}) {
			vm.coordinator.ShowSignup()
		})
	})

	scope.Go(func(ctx context.Context) error {
		var email, password string
		for {
			select {
			case v, ok := <-in.Email:
				if !ok {
					in.Email = nil
					continue
				}
				email = v
			case v, ok := <-in.Password:
				if !ok {
					in.Password = nil
					continue
				}
				password = v
			case _, ok := <-in.LoginTap:
				if !ok {
					return nil
				}
				if !vm.busy.CompareAndSwap(false, true) {
					continue
				}
				email, password := email, password
				attempt := async.Go(ctx, func(ctx context.Context) (string, error) {
					return vm.loginUseCase.Login(ctx, email, password)
				})
				scope.Go(func(ctx context.Context) error {
					defer vm.busy.Store(false)
					id, err := attempt.Await(ctx)
					if err != nil {
						vm.log.Info("login failed", sl.Err(err))
						async.Send(ctx, failed, err)
						return nil
					}
					if async.Send(ctx, loggedIn, id) {
						vm.coordinator.Finish()
					}
					return nil
				})
			case <-ctx.Done():
				return nil
			}
		}
	})

	return LoginOutput{LoggedIn: loggedIn, Failed: failed}
}
