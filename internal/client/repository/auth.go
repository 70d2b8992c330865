package repository

import (
	"context"
	"log/slog"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

type AuthRepository struct {
	log    *slog.Logger
	remote AuthDataSource
	local  LocalUserDataSource
	tokens TokenSource
}

func NewAuthRepository(log *slog.Logger, remote AuthDataSource, local LocalUserDataSource, tokens TokenSource) *AuthRepository {
	return &AuthRepository{log: log, remote: remote, local: local, tokens: tokens}
}

// Signup returns the created user. The new identity is remembered locally so
// the next start skips the login screen.
func (a *AuthRepository) Signup(ctx context.Context, req remote.SignupRequest) (domain.User, error) {
	resp, err := a.remote.Signup(ctx, req)
	if err != nil {
		return domain.User{}, err
	}

	a.remember(domain.Session{UserID: resp.ID, Email: resp.Email, Token: a.tokens.Token()})

	return domain.User{
		ID:        resp.ID,
		Email:     resp.Email,
		Name:      resp.Name,
		Introduce: resp.Introduce,
		Languages: resp.Languages,
		Careers:   resp.Careers,
		Categorys: resp.Categorys,
	}, nil
}

func (a *AuthRepository) Login(ctx context.Context, email, password string) (string, error) {
	id, err := a.remote.Login(ctx, remote.EmailLoginData{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	a.remember(domain.Session{UserID: id, Email: email, Token: a.tokens.Token()})
	return id, nil
}

func (a *AuthRepository) Logout() error {
	return a.local.Clear()
}

func (a *AuthRepository) remember(session domain.Session) {
	const op = "repository.remember"

	if err := a.local.Save(session); err != nil {
		a.log.Warn("can't save session", slog.String("op", op), sl.Err(err))
	}
}
