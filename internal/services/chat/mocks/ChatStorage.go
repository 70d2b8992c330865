package mocks

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ChatStorage struct {
	mock.Mock
}

// WithTx runs tFunc directly unless a return value is configured for it.
func (_m *ChatStorage) WithTx(ctx context.Context, tFunc func(ctx context.Context) error) error {
	ret := _m.Called(ctx, tFunc)
	if err := ret.Error(0); err != nil {
		return err
	}
	return tFunc(ctx)
}

func (_m *ChatStorage) CreateRoom(ctx context.Context, room domain.Room) (*domain.Room, error) {
	ret := _m.Called(ctx, room)

	var r0 *domain.Room
	if rf, ok := ret.Get(0).(func(context.Context, domain.Room) *domain.Room); ok {
		r0 = rf(ctx, room)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Room)
	}

	return r0, ret.Error(1)
}

func (_m *ChatStorage) GetRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	ret := _m.Called(ctx, roomID)

	var r0 *domain.Room
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Room)
	}

	return r0, ret.Error(1)
}

func (_m *ChatStorage) ListRooms(ctx context.Context, userID uuid.UUID) ([]domain.Room, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.Room
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Room)
	}

	return r0, ret.Error(1)
}

func (_m *ChatStorage) CreateMessage(ctx context.Context, message domain.Message) (*domain.Message, error) {
	ret := _m.Called(ctx, message)

	var r0 *domain.Message
	if rf, ok := ret.Get(0).(func(context.Context, domain.Message) *domain.Message); ok {
		r0 = rf(ctx, message)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Message)
	}

	return r0, ret.Error(1)
}

func (_m *ChatStorage) GetMessages(ctx context.Context, roomID uuid.UUID, before domain.MessageCursor, limit int) ([]domain.Message, error) {
	ret := _m.Called(ctx, roomID, before, limit)

	var r0 []domain.Message
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Message)
	}

	return r0, ret.Error(1)
}

func (_m *ChatStorage) CreateOutbox(ctx context.Context, outbox domain.Outbox) error {
	ret := _m.Called(ctx, outbox)
	return ret.Error(0)
}

func NewChatStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChatStorage {
	m := &ChatStorage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
