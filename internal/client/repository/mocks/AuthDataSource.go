package mocks

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/stretchr/testify/mock"
)

type AuthDataSource struct {
	mock.Mock
}

func (_m *AuthDataSource) Signup(ctx context.Context, req remote.SignupRequest) (remote.SignupResponse, error) {
	ret := _m.Called(ctx, req)
	return ret.Get(0).(remote.SignupResponse), ret.Error(1)
}

func (_m *AuthDataSource) Login(ctx context.Context, req remote.EmailLoginData) (string, error) {
	ret := _m.Called(ctx, req)
	return ret.String(0), ret.Error(1)
}

func NewAuthDataSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthDataSource {
	m := &AuthDataSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
