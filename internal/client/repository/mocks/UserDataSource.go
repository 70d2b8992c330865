package mocks

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/stretchr/testify/mock"
)

type UserDataSource struct {
	mock.Mock
}

func (_m *UserDataSource) User(ctx context.Context, id string) (remote.UserResponseDTO, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(remote.UserResponseDTO), ret.Error(1)
}

func NewUserDataSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserDataSource {
	m := &UserDataSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
