package grpc

import (
	"context"
	"errors"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"github.com/alexandernizov/mogakco/internal/services/documents"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const DocumentsServiceName = "mogakco.Documents"

type DocumentProvider interface {
	SetDocument(ctx context.Context, caller uuid.UUID, doc domain.Document) error
	GetDocument(ctx context.Context, collection, id string) (*domain.Document, error)
}

type DocumentsHandler interface {
	SetDocument(ctx context.Context, req *SetDocumentReq) (*SetDocumentResp, error)
	GetDocument(ctx context.Context, req *GetDocumentReq) (*GetDocumentResp, error)
}

var DocumentsServiceDesc = grpc.ServiceDesc{
	ServiceName: DocumentsServiceName,
	HandlerType: (*DocumentsHandler)(nil),
	Methods: []grpc.MethodDesc{
		unary(DocumentsServiceName, "SetDocument", DocumentsHandler.SetDocument),
		unary(DocumentsServiceName, "GetDocument", DocumentsHandler.GetDocument),
	},
	Metadata: "mogakco.proto",
}

type DocumentsServer struct {
	provider DocumentProvider
}

func NewDocumentsServer(provider DocumentProvider) *DocumentsServer {
	return &DocumentsServer{provider: provider}
}

func (d *DocumentsServer) SetDocument(ctx context.Context, req *SetDocumentReq) (*SetDocumentResp, error) {
	caller, err := userFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	err = d.provider.SetDocument(ctx, caller, domain.Document{
		Collection: req.Collection,
		ID:         req.ID,
		Fields:     req.Fields,
	})
	if errors.Is(err, documents.ErrInvalidDocument) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, documents.ErrPermissionDenied) {
		return nil, status.Error(codes.PermissionDenied, err.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &SetDocumentResp{}, nil
}

func (d *DocumentsServer) GetDocument(ctx context.Context, req *GetDocumentReq) (*GetDocumentResp, error) {
	doc, err := d.provider.GetDocument(ctx, req.Collection, req.ID)
	if errors.Is(err, documents.ErrInvalidDocument) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, errs.ErrDocumentNotFound) {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &GetDocumentResp{Fields: doc.Fields}, nil
}
