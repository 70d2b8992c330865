package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"github.com/alexandernizov/mogakco/internal/pkg/jwt"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
	"github.com/alexandernizov/mogakco/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AccountStorage interface {
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type AuthService struct {
	log *slog.Logger

	accountStorage AccountStorage
	jwtParams      JwtParams
}

type JwtParams struct {
	Ttl    time.Duration
	Secret []byte
}

func New(log *slog.Logger, accountStorage AccountStorage, ttl time.Duration, secret []byte) *AuthService {
	return &AuthService{log: log, accountStorage: accountStorage, jwtParams: JwtParams{Ttl: ttl, Secret: secret}}
}

// CreateUser registers a new account and signs it in right away, the same
// way the hosted auth provider does.
func (a *AuthService) CreateUser(ctx context.Context, email, password string) (*domain.Account, string, error) {
	const op = "auth.CreateUser"
	log := a.log.With(slog.String("op", op))

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	account := domain.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passHash,
	}

	created, err := a.accountStorage.CreateAccount(ctx, account)
	if errors.Is(err, storage.ErrAccountExists) {
		return nil, "", fmt.Errorf("%s: %w", op, errs.ErrUserAlreadyExists)
	}
	if err != nil {
		log.Error("failed to save account", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := jwt.NewToken(*created, a.jwtParams.Ttl, a.jwtParams.Secret)
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("account created", slog.String("uuid", created.ID.String()))

	return created, token, nil
}

func (a *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Account, string, error) {
	const op = "auth.SignIn"
	log := a.log.With(slog.String("op", op))

	account, err := a.accountStorage.GetAccountByEmail(ctx, email)
	if errors.Is(err, storage.ErrAccountNotFound) {
		return nil, "", fmt.Errorf("%s: %w", op, errs.ErrUserNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, errs.ErrInvalidCredentials)
	}

	token, err := jwt.NewToken(*account, a.jwtParams.Ttl, a.jwtParams.Secret)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return account, token, nil
}

// Authenticate resolves the account behind an access token.
func (a *AuthService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	return jwt.GetUserUuidFromToken(token, a.jwtParams.Secret)
}
