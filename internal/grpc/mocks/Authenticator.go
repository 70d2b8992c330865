package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Authenticator struct {
	mock.Mock
}

func (_m *Authenticator) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	ret := _m.Called(ctx, token)

	var r0 uuid.UUID
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}

	return r0, ret.Error(1)
}

func NewAuthenticator(t interface {
	mock.TestingT
	Cleanup(func())
}) *Authenticator {
	m := &Authenticator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
