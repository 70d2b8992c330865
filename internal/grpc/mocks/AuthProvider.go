package mocks

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/stretchr/testify/mock"
)

type AuthProvider struct {
	mock.Mock
}

func (_m *AuthProvider) CreateUser(ctx context.Context, email string, password string) (*domain.Account, string, error) {
	ret := _m.Called(ctx, email, password)

	var r0 *domain.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Account)
	}

	return r0, ret.String(1), ret.Error(2)
}

func (_m *AuthProvider) SignIn(ctx context.Context, email string, password string) (*domain.Account, string, error) {
	ret := _m.Called(ctx, email, password)

	var r0 *domain.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Account)
	}

	return r0, ret.String(1), ret.Error(2)
}

func NewAuthProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthProvider {
	m := &AuthProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
