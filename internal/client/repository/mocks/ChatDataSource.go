package mocks

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/stretchr/testify/mock"
)

type ChatDataSource struct {
	mock.Mock
}

func (_m *ChatDataSource) Fetch(ctx context.Context, chatRoomID string, before domain.ChatCursor, limit int) ([]remote.ChatResponseDTO, error) {
	ret := _m.Called(ctx, chatRoomID, before, limit)

	var r0 []remote.ChatResponseDTO
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]remote.ChatResponseDTO)
	}

	return r0, ret.Error(1)
}

func (_m *ChatDataSource) Send(ctx context.Context, chat domain.Chat, chatRoomID string) (remote.ChatResponseDTO, error) {
	ret := _m.Called(ctx, chat, chatRoomID)
	return ret.Get(0).(remote.ChatResponseDTO), ret.Error(1)
}

func NewChatDataSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChatDataSource {
	m := &ChatDataSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
