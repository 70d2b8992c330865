package mocks

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/stretchr/testify/mock"
)

type AccountStorage struct {
	mock.Mock
}

func (_m *AccountStorage) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	ret := _m.Called(ctx, account)

	var r0 *domain.Account
	if rf, ok := ret.Get(0).(func(context.Context, domain.Account) *domain.Account); ok {
		r0 = rf(ctx, account)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Account)
	}

	return r0, ret.Error(1)
}

func (_m *AccountStorage) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ret := _m.Called(ctx, email)

	var r0 *domain.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Account)
	}

	return r0, ret.Error(1)
}

func NewAccountStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountStorage {
	m := &AccountStorage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
