package grpc

import (
	"context"
	"errors"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const AuthServiceName = "mogakco.Auth"

type AuthProvider interface {
	CreateUser(ctx context.Context, email, password string) (*domain.Account, string, error)
	SignIn(ctx context.Context, email, password string) (*domain.Account, string, error)
}

type AuthHandler interface {
	CreateUser(ctx context.Context, req *CreateUserReq) (*CreateUserResp, error)
	SignIn(ctx context.Context, req *SignInReq) (*SignInResp, error)
}

var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthHandler)(nil),
	Methods: []grpc.MethodDesc{
		unary(AuthServiceName, "CreateUser", AuthHandler.CreateUser),
		unary(AuthServiceName, "SignIn", AuthHandler.SignIn),
	},
	Metadata: "mogakco.proto",
}

type AuthServer struct {
	provider AuthProvider
}

func NewAuthServer(provider AuthProvider) *AuthServer {
	return &AuthServer{provider: provider}
}

func (a *AuthServer) CreateUser(ctx context.Context, req *CreateUserReq) (*CreateUserResp, error) {
	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}

	account, token, err := a.provider.CreateUser(ctx, req.Email, req.Password)
	if errors.Is(err, errs.ErrUserAlreadyExists) {
		return nil, status.Error(codes.AlreadyExists, err.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &CreateUserResp{ID: account.ID.String(), Token: token}, nil
}

func (a *AuthServer) SignIn(ctx context.Context, req *SignInReq) (*SignInResp, error) {
	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}

	account, token, err := a.provider.SignIn(ctx, req.Email, req.Password)
	if errors.Is(err, errs.ErrUserNotFound) {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	if errors.Is(err, errs.ErrInvalidCredentials) {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &SignInResp{ID: account.ID.String(), Token: token}, nil
}
