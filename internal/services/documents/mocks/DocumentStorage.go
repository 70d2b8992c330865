package mocks

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/stretchr/testify/mock"
)

type DocumentStorage struct {
	mock.Mock
}

func (_m *DocumentStorage) SetDocument(ctx context.Context, doc domain.Document) error {
	ret := _m.Called(ctx, doc)
	return ret.Error(0)
}

func (_m *DocumentStorage) GetDocument(ctx context.Context, collection string, id string) (*domain.Document, error) {
	ret := _m.Called(ctx, collection, id)

	var r0 *domain.Document
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Document)
	}

	return r0, ret.Error(1)
}

func NewDocumentStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *DocumentStorage {
	m := &DocumentStorage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
