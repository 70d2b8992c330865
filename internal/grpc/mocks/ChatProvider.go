package mocks

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ChatProvider struct {
	mock.Mock
}

func (_m *ChatProvider) CreateRoom(ctx context.Context, studyID string, members []uuid.UUID) (*domain.Room, error) {
	ret := _m.Called(ctx, studyID, members)

	var r0 *domain.Room
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Room)
	}

	return r0, ret.Error(1)
}

func (_m *ChatProvider) ListRooms(ctx context.Context, userID uuid.UUID) ([]domain.Room, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.Room
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Room)
	}

	return r0, ret.Error(1)
}

func (_m *ChatProvider) SendMessage(ctx context.Context, roomID uuid.UUID, authorID uuid.UUID, body string) (*domain.Message, error) {
	ret := _m.Called(ctx, roomID, authorID, body)

	var r0 *domain.Message
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Message)
	}

	return r0, ret.Error(1)
}

func (_m *ChatProvider) FetchMessages(ctx context.Context, roomID uuid.UUID, userID uuid.UUID, before domain.MessageCursor, limit int) ([]domain.Message, error) {
	ret := _m.Called(ctx, roomID, userID, before, limit)

	var r0 []domain.Message
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Message)
	}

	return r0, ret.Error(1)
}

func NewChatProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChatProvider {
	m := &ChatProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
