package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

var publicMethods = map[string]bool{
	"/" + AuthServiceName + "/CreateUser": true,
	"/" + AuthServiceName + "/SignIn":     true,
}

func unaryLoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		log.Debug(fmt.Sprintf("Request: %s", info.FullMethod))

		resp, err := handler(ctx, req)

		if err != nil {
			st := status.Convert(err)
			switch st.Code() {
			case codes.Unauthenticated:
				log.Warn(fmt.Sprintf("Unauthenticated try: %s", info.FullMethod))
			case codes.Internal:
				log.Error(fmt.Sprintf("Request error: %s", info.FullMethod), sl.Err(err))
			default:
				log.Info(fmt.Sprintf("Request error: %s, %s", info.FullMethod, st.Code().String()))
			}
		}

		return resp, err
	}
}

func unaryAuthInterceptor(log *slog.Logger, auth Authenticator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		token, err := bearerToken(ctx)
		if err != nil {
			return nil, err
		}

		user, err := auth.Authenticate(ctx, token)
		if err != nil {
			log.Warn("someone trying to get access with invalid token", slog.String("method", info.FullMethod))
			return nil, status.Error(codes.Unauthenticated, "token is invalid")
		}

		ctx = context.WithValue(ctx, domain.UserCtxKey{}, user)
		return handler(ctx, req)
	}
}

func unaryMetricsInterceptor(m *Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		m.observe(info.FullMethod, status.Code(err), time.Since(start))
		return resp, err
	}
}

func unaryTimeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if timeout <= 0 {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return handler(ctx, req)
	}
}

func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "metadata not found")
	}

	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		return "", status.Error(codes.Unauthenticated, "authorization header not found")
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(authHeaders[0], prefix) {
		return "", status.Error(codes.Unauthenticated, "invalid authorization header")
	}

	token := strings.TrimPrefix(authHeaders[0], prefix)
	if token == "" {
		return "", status.Error(codes.Unauthenticated, "token is missing")
	}
	return token, nil
}
