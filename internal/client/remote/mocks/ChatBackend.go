package mocks

import (
	"context"

	api "github.com/alexandernizov/mogakco/internal/grpc"
	"github.com/stretchr/testify/mock"
)

type ChatBackend struct {
	mock.Mock
}

func (_m *ChatBackend) SendMessage(ctx context.Context, req *api.SendMessageReq) (*api.SendMessageResp, error) {
	ret := _m.Called(ctx, req)

	var r0 *api.SendMessageResp
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.SendMessageResp)
	}

	return r0, ret.Error(1)
}

func (_m *ChatBackend) FetchMessages(ctx context.Context, req *api.FetchMessagesReq) (*api.FetchMessagesResp, error) {
	ret := _m.Called(ctx, req)

	var r0 *api.FetchMessagesResp
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.FetchMessagesResp)
	}

	return r0, ret.Error(1)
}

func (_m *ChatBackend) CreateRoom(ctx context.Context, req *api.CreateRoomReq) (*api.CreateRoomResp, error) {
	ret := _m.Called(ctx, req)

	var r0 *api.CreateRoomResp
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.CreateRoomResp)
	}

	return r0, ret.Error(1)
}

func (_m *ChatBackend) ListRooms(ctx context.Context, req *api.ListRoomsReq) (*api.ListRoomsResp, error) {
	ret := _m.Called(ctx, req)

	var r0 *api.ListRoomsResp
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.ListRoomsResp)
	}

	return r0, ret.Error(1)
}

func NewChatBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChatBackend {
	m := &ChatBackend{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
