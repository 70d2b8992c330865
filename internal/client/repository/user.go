package repository

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/domain"
)

type UserRepository struct {
	local  LocalUserDataSource
	remote UserDataSource
}

func NewUserRepository(local LocalUserDataSource, remote UserDataSource) *UserRepository {
	return &UserRepository{local: local, remote: remote}
}

// Load returns the signed-in session or errs.ErrSessionNotFound.
func (u *UserRepository) Load() (domain.Session, error) {
	return u.local.Load()
}

func (u *UserRepository) User(ctx context.Context, id string) (domain.User, error) {
	dto, err := u.remote.User(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return toUser(dto), nil
}

func toUser(dto remote.UserResponseDTO) domain.User {
	return domain.User{
		ID:              dto.ID,
		Email:           dto.Email,
		Name:            dto.Name,
		Introduce:       dto.Introduce,
		ProfileImageURL: dto.ProfileImageURL,
		Languages:       dto.Languages,
		Careers:         dto.Careers,
		Categorys:       dto.Categorys,
	}
}
