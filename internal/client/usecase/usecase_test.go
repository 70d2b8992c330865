package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/stretchr/testify/assert"
)

type fakeAuthRepository struct {
	user      domain.User
	id        string
	err       error
	loggedOut bool
}

func (f *fakeAuthRepository) Signup(context.Context, remote.SignupRequest) (domain.User, error) {
	return f.user, f.err
}

func (f *fakeAuthRepository) Login(context.Context, string, string) (string, error) {
	return f.id, f.err
}

func (f *fakeAuthRepository) Logout() error {
	f.loggedOut = true
	return nil
}

type fakeChatRepository struct {
	before domain.ChatCursor
	limit  int
	chats  []domain.Chat
}

func (f *fakeChatRepository) Fetch(_ context.Context, _ string, before domain.ChatCursor, limit int) ([]domain.Chat, error) {
	f.before, f.limit = before, limit
	return f.chats, nil
}

func (f *fakeChatRepository) Send(_ context.Context, chat domain.Chat, _ string) (domain.Chat, error) {
	return chat, nil
}

func TestSignupUseCase(t *testing.T) {
	repo := &fakeAuthRepository{user: domain.User{ID: "u1", Name: "kim"}}

	got, err := NewSignupUseCase(repo).Signup(context.Background(), remote.SignupRequest{Name: "kim"})

	assert.NoError(t, err)
	assert.Equal(t, domain.User{ID: "u1", Name: "kim"}, got)
}

func TestLoginUseCase(t *testing.T) {
	backendErr := errors.New("wrong password")
	uc := NewLoginUseCase(&fakeAuthRepository{err: backendErr})

	id, err := uc.Login(context.Background(), "a@x.com", "pw")

	assert.Empty(t, id)
	assert.Same(t, backendErr, err)
}

func TestLoginUseCase_Logout(t *testing.T) {
	repo := &fakeAuthRepository{}

	assert.NoError(t, NewLoginUseCase(repo).Logout())
	assert.True(t, repo.loggedOut)
}

func TestChatUseCase_ForwardsPage(t *testing.T) {
	before := domain.ChatCursor{Date: time.Date(2022, 11, 21, 0, 0, 0, 0, time.UTC), ID: "m1"}
	repo := &fakeChatRepository{chats: []domain.Chat{{Message: "hi"}}}
	uc := NewChatUseCase(repo)

	got, err := uc.Fetch(context.Background(), "room", before, 20)

	assert.NoError(t, err)
	assert.Equal(t, []domain.Chat{{Message: "hi"}}, got)
	assert.Equal(t, before, repo.before)
	assert.Equal(t, 20, repo.limit)
}

type fakeUserRepository struct {
	session domain.Session
	users   map[string]domain.User
}

func (f *fakeUserRepository) Load() (domain.Session, error) {
	return f.session, nil
}

func (f *fakeUserRepository) User(_ context.Context, id string) (domain.User, error) {
	return f.users[id], nil
}

func TestUserUseCase_CurrentUser(t *testing.T) {
	repo := &fakeUserRepository{
		session: domain.Session{UserID: "u1", Token: "token-1"},
		users:   map[string]domain.User{"u1": {ID: "u1", Email: "a@x.com", Name: "kim"}},
	}
	uc := NewUserUseCase(repo)

	session, err := uc.CurrentSession()
	assert.NoError(t, err)

	got, err := uc.User(context.Background(), session.UserID)

	assert.NoError(t, err)
	assert.Equal(t, domain.User{ID: "u1", Email: "a@x.com", Name: "kim"}, got)
}
