package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/alexandernizov/mogakco/internal/domain/errs"
	api "github.com/alexandernizov/mogakco/internal/grpc"
)

type UserDataSource struct {
	documents DocumentBackend
}

func NewUserDataSource(documents DocumentBackend) *UserDataSource {
	return &UserDataSource{documents: documents}
}

// User reads the profile document of id. A missing document means the
// account was deleted and yields errs.ErrUserNotFound.
func (u *UserDataSource) User(ctx context.Context, id string) (UserResponseDTO, error) {
	const op = "remote.User"

	resp, err := u.documents.GetDocument(ctx, &api.GetDocumentReq{Collection: UserCollection, ID: id})
	if status.Code(err) == codes.NotFound {
		return UserResponseDTO{}, fmt.Errorf("%s: %w", op, errs.ErrUserNotFound)
	}
	if err != nil {
		return UserResponseDTO{}, err
	}

	raw, err := json.Marshal(resp.Fields)
	if err != nil {
		return UserResponseDTO{}, fmt.Errorf("%s: %w", op, err)
	}
	var dto UserResponseDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return UserResponseDTO{}, fmt.Errorf("%s: %w", op, err)
	}
	if dto.ID == "" {
		dto.ID = id
	}
	return dto, nil
}
