package viewmodel

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/pkg/async"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

type SignupUseCase interface {
	Signup(ctx context.Context, req remote.SignupRequest) (domain.User, error)
}

type SignupCoordinator interface {
	PopScreen()
	Finish()
}

// SignupInput takes list fields as comma separated text. Field channels
// are never closed by the screen.
type SignupInput struct {
	Email     <-chan string
	Password  <-chan string
	Name      <-chan string
	Introduce <-chan string
	Languages <-chan string
	Careers   <-chan string
	Categorys <-chan string
	SignupTap <-chan struct{}
	BackTap   <-chan struct{}
}

type SignupOutput struct {
	SignedUp <-chan domain.User
	Failed   <-chan error
}

type SignupViewModel struct {
	log           *slog.Logger
	coordinator   SignupCoordinator
	signupUseCase SignupUseCase
	busy          atomic.Bool
}

func NewSignupViewModel(log *slog.Logger, coordinator SignupCoordinator, signupUseCase SignupUseCase) *SignupViewModel {
	return &SignupViewModel{log: log, coordinator: coordinator, signupUseCase: signupUseCase}
}

// Transform collects the form fields and signs up on every tap. Taps made
// while an attempt is in flight are ignored.
func (vm *SignupViewModel) Transform(scope *async.Scope, in SignupInput) SignupOutput {
	signedUp := make(chan domain.User, 1)
	failed := make(chan error, 1)

	scope.Go(func(ctx context.Context) error {
		return async.Each(ctx, in.BackTap, func(struct{}) {
			vm.coordinator.PopScreen()
		})
	})

	scope.Go(func(ctx context.Context) error {
		var req remote.SignupRequest
		for {
			select {
			case v := <-in.Email:
				req.Email = v
			case v := <-in.Password:
				req.Password = v
			case v := <-in.Name:
				req.Name = v
			case v := <-in.Introduce:
				req.Introduce = v
			case v := <-in.Languages:
				req.Languages = splitList(v)
			case v := <-in.Careers:
				req.Careers = splitList(v)
			case v := <-in.Categorys:
				req.Categorys = splitList(v)
			case _, ok := <-in.SignupTap:
				if !ok {
					return nil
				}
				if !vm.busy.CompareAndSwap(false, true) {
					continue
				}
				req := req
				attempt := async.Go(ctx, func(ctx context.Context) (domain.User, error) {
					return vm.signupUseCase.Signup(ctx, req)
				})
				scope.Go(func(ctx context.Context) error {
					defer vm.busy.Store(false)
					user, err := attempt.Await(ctx)
					if err != nil {
						vm.log.Info("signup failed", sl.Err(err))
						async.Send(ctx, failed, err)
						return nil
					}
					if async.Send(ctx, signedUp, user) {
						vm.coordinator.Finish()
					}
					return nil
				})
			case <-ctx.Done():
				return nil
			}
		}
	})

	return SignupOutput{SignedUp: signedUp, Failed: failed}
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
