package usecase

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/domain"
)

type AuthRepository interface {
	Signup(ctx context.Context, req remote.SignupRequest) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout() error
}

type UserRepository interface {
	Load() (domain.Session, error)
	User(ctx context.Context, id string) (domain.User, error)
}

type ChatRepository interface {
	Fetch(ctx context.Context, chatRoomID string, before domain.ChatCursor, limit int) ([]domain.Chat, error)
	Send(ctx context.Context, chat domain.Chat, chatRoomID string) (domain.Chat, error)
}

type ChatRoomRepository interface {
	List(ctx context.Context) ([]domain.ChatRoom, error)
	Create(ctx context.Context, studyID string, userIDs []string) (domain.ChatRoom, error)
}

type SignupUseCase struct {
	authRepository AuthRepository
}

func NewSignupUseCase(authRepository AuthRepository) *SignupUseCase {
	return &SignupUseCase{authRepository: authRepository}
}

func (s *SignupUseCase) Signup(ctx context.Context, req remote.SignupRequest) (domain.User, error) {
	return s.authRepository.Signup(ctx, req)
}

type LoginUseCase struct {
	authRepository AuthRepository
}

func NewLoginUseCase(authRepository AuthRepository) *LoginUseCase {
	return &LoginUseCase{authRepository: authRepository}
}

func (l *LoginUseCase) Login(ctx context.Context, email, password string) (string, error) {
	return l.authRepository.Login(ctx, email, password)
}

func (l *LoginUseCase) Logout() error {
	return l.authRepository.Logout()
}

type UserUseCase struct {
	userRepository UserRepository
}

func NewUserUseCase(userRepository UserRepository) *UserUseCase {
	return &UserUseCase{userRepository: userRepository}
}

func (u *UserUseCase) User(ctx context.Context, id string) (domain.User, error) {
	return u.userRepository.User(ctx, id)
}

// CurrentSession is used at start-up to skip the login screen.
func (u *UserUseCase) CurrentSession() (domain.Session, error) {
	return u.userRepository.Load()
}

type ChatUseCase struct {
	chatRepository ChatRepository
}

func NewChatUseCase(chatRepository ChatRepository) *ChatUseCase {
	return &ChatUseCase{chatRepository: chatRepository}
}

func (c *ChatUseCase) Fetch(ctx context.Context, chatRoomID string, before domain.ChatCursor, limit int) ([]domain.Chat, error) {
	return c.chatRepository.Fetch(ctx, chatRoomID, before, limit)
}

func (c *ChatUseCase) Send(ctx context.Context, chat domain.Chat, chatRoomID string) (domain.Chat, error) {
	return c.chatRepository.Send(ctx, chat, chatRoomID)
}

type ChatRoomListUseCase struct {
	chatRoomRepository ChatRoomRepository
}

func NewChatRoomListUseCase(chatRoomRepository ChatRoomRepository) *ChatRoomListUseCase {
	return &ChatRoomListUseCase{chatRoomRepository: chatRoomRepository}
}

func (c *ChatRoomListUseCase) ChatRooms(ctx context.Context) ([]domain.ChatRoom, error) {
	return c.chatRoomRepository.List(ctx)
}

func (c *ChatRoomListUseCase) CreateChatRoom(ctx context.Context, studyID string, userIDs []string) (domain.ChatRoom, error) {
	return c.chatRoomRepository.Create(ctx, studyID, userIDs)
}
