package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	api "github.com/alexandernizov/mogakco/internal/grpc"
)

type fakeGateway struct {
	signIn   *api.SignInReq
	fetch    *api.FetchMessagesReq
	send     *api.SendMessageReq
	auth     []string
	roomsErr error
}

func (f *fakeGateway) CreateUser(_ context.Context, req *api.CreateUserReq) (*api.CreateUserResp, error) {
	return &api.CreateUserResp{ID: "u1", Token: "tok"}, nil
}

func (f *fakeGateway) SignIn(_ context.Context, req *api.SignInReq) (*api.SignInResp, error) {
	f.signIn = req
	return &api.SignInResp{ID: "u1", Token: "tok"}, nil
}

func (f *fakeGateway) ListRooms(context.Context, *api.ListRoomsReq) (*api.ListRoomsResp, error) {
	if f.roomsErr != nil {
		return nil, f.roomsErr
	}
	return &api.ListRoomsResp{Rooms: []api.RoomDTO{{ID: "r1", StudyID: "s1"}}}, nil
}

func (f *fakeGateway) CreateRoom(_ context.Context, req *api.CreateRoomReq) (*api.CreateRoomResp, error) {
	return &api.CreateRoomResp{Room: api.RoomDTO{ID: "r2", StudyID: req.StudyID}}, nil
}

func (f *fakeGateway) FetchMessages(ctx context.Context, req *api.FetchMessagesReq) (*api.FetchMessagesResp, error) {
	f.fetch = req
	md, _ := metadata.FromOutgoingContext(ctx)
	f.auth = md.Get("authorization")
	return &api.FetchMessagesResp{Messages: []api.MessageDTO{{ID: "m1", Message: "hi"}}}, nil
}

func (f *fakeGateway) SendMessage(_ context.Context, req *api.SendMessageReq) (*api.SendMessageResp, error) {
	f.send = req
	return &api.SendMessageResp{Message: api.MessageDTO{ID: "m2", ChatRoomID: req.ChatRoomID, Message: req.Message}}, nil
}

func gatewayRouter(t *testing.T, backend *fakeGateway) http.Handler {
	t.Helper()
	return router(t, New(WithLogger(discard()), WithGrpcGateway(backend)))
}

func TestGateway_SignIn(t *testing.T) {
	backend := &fakeGateway{}
	rec := httptest.NewRecorder()

	gatewayRouter(t, backend).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/signin",
		strings.NewReader(`{"email":"a@x.com","password":"pw"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &api.SignInReq{Email: "a@x.com", Password: "pw"}, backend.signIn)
	var got api.SignInResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, api.SignInResp{ID: "u1", Token: "tok"}, got)
}

func TestGateway_FetchMessages(t *testing.T) {
	before := time.Date(2024, 5, 1, 10, 0, 0, 123000, time.UTC)
	backend := &fakeGateway{}
	req := httptest.NewRequest(http.MethodGet,
		"/v1/rooms/room-1/messages?before="+before.Format(time.RFC3339Nano)+"&before_id=m9&limit=5", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()

	gatewayRouter(t, backend).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, backend.fetch)
	assert.Equal(t, "room-1", backend.fetch.ChatRoomID)
	assert.True(t, before.Equal(backend.fetch.Before))
	assert.Equal(t, "m9", backend.fetch.BeforeID)
	assert.Equal(t, 5, backend.fetch.Limit)
	assert.Equal(t, []string{"Bearer tok"}, backend.auth)
}

func TestGateway_SendMessage(t *testing.T) {
	backend := &fakeGateway{}
	rec := httptest.NewRecorder()

	gatewayRouter(t, backend).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/rooms/room-1/messages",
		strings.NewReader(`{"message":"hello"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &api.SendMessageReq{ChatRoomID: "room-1", Message: "hello"}, backend.send)
}

func TestGateway_Errors(t *testing.T) {
	tests := []struct {
		name     string
		backend  *fakeGateway
		req      *http.Request
		wantCode int
	}{
		{
			name:     "unauthenticated",
			backend:  &fakeGateway{roomsErr: status.Error(codes.Unauthenticated, "authorization header not found")},
			req:      httptest.NewRequest(http.MethodGet, "/v1/rooms", nil),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "bad_body",
			backend:  &fakeGateway{},
			req:      httptest.NewRequest(http.MethodPost, "/v1/auth/signin", strings.NewReader(`{`)),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad_limit",
			backend:  &fakeGateway{},
			req:      httptest.NewRequest(http.MethodGet, "/v1/rooms/room-1/messages?limit=many", nil),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			gatewayRouter(t, tt.backend).ServeHTTP(rec, tt.req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestGateway_DisabledWithoutBackend(t *testing.T) {
	rec := httptest.NewRecorder()

	router(t, New(WithLogger(discard()))).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
