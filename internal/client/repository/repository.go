package repository

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/domain"
)

type AuthDataSource interface {
	Signup(ctx context.Context, req remote.SignupRequest) (remote.SignupResponse, error)
	Login(ctx context.Context, req remote.EmailLoginData) (string, error)
}

type ChatDataSource interface {
	Fetch(ctx context.Context, chatRoomID string, before domain.ChatCursor, limit int) ([]remote.ChatResponseDTO, error)
	Send(ctx context.Context, chat domain.Chat, chatRoomID string) (remote.ChatResponseDTO, error)
}

type ChatRoomDataSource interface {
	List(ctx context.Context) ([]remote.ChatRoomResponseDTO, error)
	Create(ctx context.Context, studyID string, userIDs []string) (remote.ChatRoomResponseDTO, error)
}

type UserDataSource interface {
	User(ctx context.Context, id string) (remote.UserResponseDTO, error)
}

// LocalUserDataSource is the on-device record of who is signed in.
type LocalUserDataSource interface {
	Load() (domain.Session, error)
	Save(session domain.Session) error
	Clear() error
}

// TokenSource exposes the token issued by the last successful sign in.
type TokenSource interface {
	Token() string
}
