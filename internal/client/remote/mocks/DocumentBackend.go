package mocks

import (
	"context"

	api "github.com/alexandernizov/mogakco/internal/grpc"
	"github.com/stretchr/testify/mock"
)

type DocumentBackend struct {
	mock.Mock
}

func (_m *DocumentBackend) SetDocument(ctx context.Context, req *api.SetDocumentReq) (*api.SetDocumentResp, error) {
	ret := _m.Called(ctx, req)

	var r0 *api.SetDocumentResp
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.SetDocumentResp)
	}

	return r0, ret.Error(1)
}

func (_m *DocumentBackend) GetDocument(ctx context.Context, req *api.GetDocumentReq) (*api.GetDocumentResp, error) {
	ret := _m.Called(ctx, req)

	var r0 *api.GetDocumentResp
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.GetDocumentResp)
	}

	return r0, ret.Error(1)
}

func NewDocumentBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *DocumentBackend {
	m := &DocumentBackend{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
