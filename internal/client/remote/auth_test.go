package remote

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	api "github.com/alexandernizov/mogakco/internal/grpc"
	"github.com/alexandernizov/mogakco/internal/client/remote/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthService_Signup(t *testing.T) {
	req := SignupRequest{
		Email:     "a@x.com",
		Password:  "pw",
		Name:      "kim",
		Introduce: "hello",
		Languages: []string{"go"},
		Careers:   []string{"backend"},
		Categorys: []string{"study"},
	}
	errCreate := status.Error(codes.AlreadyExists, "user already exists")
	errWrite := status.Error(codes.Unavailable, "document store is down")

	tests := []struct {
		name       string
		createResp *api.CreateUserResp
		createErr  error
		writeErr   error
		wantWrite  bool
		want       SignupResponse
		wantErr    error
	}{
		{
			name:       "success",
			createResp: &api.CreateUserResp{ID: "generated", Token: "tok"},
			wantWrite:  true,
			want: SignupResponse{
				ID:        "generated",
				Email:     req.Email,
				Name:      req.Name,
				Introduce: req.Introduce,
				Languages: req.Languages,
				Careers:   req.Careers,
				Categorys: req.Categorys,
			},
		},
		{
			name:      "account_creation_fails",
			createErr: errCreate,
			wantErr:   errCreate,
		},
		{
			name:       "document_write_fails",
			createResp: &api.CreateUserResp{ID: "generated", Token: "tok"},
			wantWrite:  true,
			writeErr:   errWrite,
			wantErr:    errWrite,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewAuthBackend(t)
			docs := mocks.NewDocumentBackend(t)
			session := NewSession("previous", "old-tok")
			auth.On("CreateUser", mock.Anything, &api.CreateUserReq{Email: req.Email, Password: req.Password}).
				Return(tt.createResp, tt.createErr).Once()
			if tt.wantWrite {
				docs.On("SetDocument", mock.Anything, mock.MatchedBy(func(r *api.SetDocumentReq) bool {
					_, hasPassword := r.Fields["password"]
					return session.Token() == "tok" &&
						r.Collection == UserCollection &&
						r.ID == "generated" &&
						r.Fields["id"] == "generated" &&
						r.Fields["email"] == req.Email &&
						r.Fields["name"] == req.Name &&
						r.Fields["introduce"] == req.Introduce &&
						!hasPassword
				})).Return(&api.SetDocumentResp{}, tt.writeErr).Once()
			}
			s := NewAuthService(discard(), auth, docs, session)

			got, err := s.Signup(context.Background(), req)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Equal(t, SignupResponse{}, got)
				assert.Equal(t, "previous", session.UserID())
				assert.Equal(t, "old-tok", session.Token())
				if !tt.wantWrite {
					docs.AssertNotCalled(t, "SetDocument", mock.Anything, mock.Anything)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "tok", session.Token())
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	wrongPassword := status.Error(codes.Unauthenticated, "invalid credentials")

	tests := []struct {
		name    string
		resp    *api.SignInResp
		err     error
		want    string
		wantErr error
	}{
		{
			name: "valid_account",
			resp: &api.SignInResp{ID: "uid-1", Token: "tok"},
			want: "uid-1",
		},
		{
			name:    "wrong_password",
			err:     wrongPassword,
			wantErr: wrongPassword,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewAuthBackend(t)
			auth.On("SignIn", mock.Anything, &api.SignInReq{Email: "a@x.com", Password: "pw"}).Return(tt.resp, tt.err).Once()
			session := &Session{}
			s := NewAuthService(discard(), auth, mocks.NewDocumentBackend(t), session)

			got, err := s.Login(context.Background(), EmailLoginData{Email: "a@x.com", Password: "pw"})

			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Empty(t, session.Token())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "uid-1", session.UserID())
			assert.Equal(t, "tok", session.Token())
		})
	}
}

func TestSession_RequestMetadata(t *testing.T) {
	s := &Session{}

	md, err := s.GetRequestMetadata(context.Background())
	require.NoError(t, err)
	assert.Nil(t, md)

	s.Set("uid", "tok")
	md, err = s.GetRequestMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"authorization": "Bearer tok"}, md)
	assert.False(t, s.RequireTransportSecurity())
}

func TestAuthService_SignupPassesBackendErrorUnchanged(t *testing.T) {
	backendErr := errors.New("EMAIL_EXISTS")
	auth := mocks.NewAuthBackend(t)
	auth.On("CreateUser", mock.Anything, mock.Anything).Return(nil, backendErr).Once()
	s := NewAuthService(discard(), auth, mocks.NewDocumentBackend(t), &Session{})

	_, err := s.Signup(context.Background(), SignupRequest{Email: "a@x.com", Password: "pw"})

	assert.Same(t, backendErr, err)
}
