package mocks

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type DocumentProvider struct {
	mock.Mock
}

func (_m *DocumentProvider) SetDocument(ctx context.Context, caller uuid.UUID, doc domain.Document) error {
	ret := _m.Called(ctx, caller, doc)
	return ret.Error(0)
}

func (_m *DocumentProvider) GetDocument(ctx context.Context, collection string, id string) (*domain.Document, error) {
	ret := _m.Called(ctx, collection, id)

	var r0 *domain.Document
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Document)
	}

	return r0, ret.Error(1)
}

func NewDocumentProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *DocumentProvider {
	m := &DocumentProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
