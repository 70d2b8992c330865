package mocks

import (
	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/stretchr/testify/mock"
)

type LocalUserDataSource struct {
	mock.Mock
}

func (_m *LocalUserDataSource) Load() (domain.Session, error) {
	ret := _m.Called()
	return ret.Get(0).(domain.Session), ret.Error(1)
}

func (_m *LocalUserDataSource) Save(session domain.Session) error {
	ret := _m.Called(session)
	return ret.Error(0)
}

func (_m *LocalUserDataSource) Clear() error {
	ret := _m.Called()
	return ret.Error(0)
}

func NewLocalUserDataSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *LocalUserDataSource {
	m := &LocalUserDataSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
