package mocks

import (
	"context"

	api "github.com/alexandernizov/mogakco/internal/grpc"
	"github.com/stretchr/testify/mock"
)

type AuthBackend struct {
	mock.Mock
}

func (_m *AuthBackend) CreateUser(ctx context.Context, req *api.CreateUserReq) (*api.CreateUserResp, error) {
	ret := _m.Called(ctx, req)

	var r0 *api.CreateUserResp
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.CreateUserResp)
	}

	return r0, ret.Error(1)
}

func (_m *AuthBackend) SignIn(ctx context.Context, req *api.SignInReq) (*api.SignInResp, error) {
	ret := _m.Called(ctx, req)

	var r0 *api.SignInResp
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.SignInResp)
	}

	return r0, ret.Error(1)
}

func NewAuthBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthBackend {
	m := &AuthBackend{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
