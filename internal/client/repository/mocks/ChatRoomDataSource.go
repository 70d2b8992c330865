package mocks

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/stretchr/testify/mock"
)

type ChatRoomDataSource struct {
	mock.Mock
}

func (_m *ChatRoomDataSource) List(ctx context.Context) ([]remote.ChatRoomResponseDTO, error) {
	ret := _m.Called(ctx)

	var r0 []remote.ChatRoomResponseDTO
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]remote.ChatRoomResponseDTO)
	}

	return r0, ret.Error(1)
}

func (_m *ChatRoomDataSource) Create(ctx context.Context, studyID string, userIDs []string) (remote.ChatRoomResponseDTO, error) {
	ret := _m.Called(ctx, studyID, userIDs)
	return ret.Get(0).(remote.ChatRoomResponseDTO), ret.Error(1)
}

func NewChatRoomDataSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChatRoomDataSource {
	m := &ChatRoomDataSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
