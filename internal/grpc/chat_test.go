package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"github.com/alexandernizov/mogakco/internal/grpc/mocks"
	"github.com/alexandernizov/mogakco/internal/services/chat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func userCtx(id uuid.UUID) context.Context {
	return context.WithValue(context.Background(), domain.UserCtxKey{}, id)
}

func TestChatServer_SendMessage(t *testing.T) {
	type mockArgs struct {
		methodName string
		arguments  []any
		returning  []any
	}
	user := uuid.New()
	room := uuid.New()
	date := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msg := &domain.Message{ID: uuid.New(), ChatRoomID: room, UserID: user, Body: "hi", CreatedAt: date}

	tests := []struct {
		name     string
		ctx      context.Context
		req      *SendMessageReq
		mockArgs mockArgs
		wantCode codes.Code
	}{
		{
			name:     "success",
			ctx:      userCtx(user),
			req:      &SendMessageReq{ChatRoomID: room.String(), Message: "hi"},
			mockArgs: mockArgs{methodName: "SendMessage", arguments: []any{mock.Anything, room, user, "hi"}, returning: []any{msg, nil}},
			wantCode: codes.OK,
		},
		{
			name:     "no_user",
			ctx:      context.Background(),
			req:      &SendMessageReq{ChatRoomID: room.String(), Message: "hi"},
			wantCode: codes.Unauthenticated,
		},
		{
			name:     "bad_room_id",
			ctx:      userCtx(user),
			req:      &SendMessageReq{ChatRoomID: "room", Message: "hi"},
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "empty_message",
			ctx:      userCtx(user),
			req:      &SendMessageReq{ChatRoomID: room.String(), Message: " "},
			mockArgs: mockArgs{methodName: "SendMessage", arguments: []any{mock.Anything, room, user, " "}, returning: []any{nil, chat.ErrEmptyMessage}},
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "room_not_found",
			ctx:      userCtx(user),
			req:      &SendMessageReq{ChatRoomID: room.String(), Message: "hi"},
			mockArgs: mockArgs{methodName: "SendMessage", arguments: []any{mock.Anything, room, user, "hi"}, returning: []any{nil, errs.ErrChatRoomNotFound}},
			wantCode: codes.NotFound,
		},
		{
			name:     "not_member",
			ctx:      userCtx(user),
			req:      &SendMessageReq{ChatRoomID: room.String(), Message: "hi"},
			mockArgs: mockArgs{methodName: "SendMessage", arguments: []any{mock.Anything, room, user, "hi"}, returning: []any{nil, errs.ErrNotRoomMember}},
			wantCode: codes.PermissionDenied,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewChatProvider(t)
			if tt.mockArgs.methodName > "" {
				provider.On(tt.mockArgs.methodName, tt.mockArgs.arguments...).Return(tt.mockArgs.returning...).Once()
			}
			c := NewChatServer(provider)

			got, err := c.SendMessage(tt.ctx, tt.req)

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				require.NotNil(t, got)
				assert.Equal(t, "hi", got.Message.Message)
				assert.Equal(t, user.String(), got.Message.UserID)
				assert.Equal(t, date, got.Message.Date)
			}
		})
	}
}

func TestChatServer_FetchMessages(t *testing.T) {
	user := uuid.New()
	room := uuid.New()
	before := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	lastSeen := uuid.New()

	provider := mocks.NewChatProvider(t)
	provider.On("FetchMessages", mock.Anything, room, user, domain.MessageCursor{CreatedAt: before, ID: lastSeen}, 20).Return([]domain.Message{
		{ID: uuid.New(), ChatRoomID: room, UserID: user, Body: "one"},
		{ID: uuid.New(), ChatRoomID: room, UserID: user, Body: "two"},
	}, nil).Once()
	c := NewChatServer(provider)

	got, err := c.FetchMessages(userCtx(user), &FetchMessagesReq{ChatRoomID: room.String(), Before: before, BeforeID: lastSeen.String(), Limit: 20})
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "one", got.Messages[0].Message)
	assert.Equal(t, "two", got.Messages[1].Message)

	_, err = c.FetchMessages(userCtx(user), &FetchMessagesReq{ChatRoomID: room.String(), Limit: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.FetchMessages(userCtx(user), &FetchMessagesReq{ChatRoomID: room.String(), BeforeID: "nope", Limit: 20})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestChatServer_CreateRoom(t *testing.T) {
	user := uuid.New()
	other := uuid.New()
	room := &domain.Room{ID: uuid.New(), StudyID: "study", UserIDs: []uuid.UUID{user, other}}

	provider := mocks.NewChatProvider(t)
	provider.On("CreateRoom", mock.Anything, "study", []uuid.UUID{user, other}).Return(room, nil).Once()
	c := NewChatServer(provider)

	got, err := c.CreateRoom(userCtx(user), &CreateRoomReq{StudyID: "study", UserIDs: []string{other.String(), user.String()}})
	require.NoError(t, err)
	assert.Equal(t, room.ID.String(), got.Room.ID)
	assert.Equal(t, []string{user.String(), other.String()}, got.Room.UserIDs)

	_, err = c.CreateRoom(userCtx(user), &CreateRoomReq{StudyID: "study", UserIDs: []string{"nope"}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestChatServer_ListRooms(t *testing.T) {
	user := uuid.New()

	provider := mocks.NewChatProvider(t)
	provider.On("ListRooms", mock.Anything, user).Return(nil, errors.New("db is down")).Once()
	c := NewChatServer(provider)

	_, err := c.ListRooms(userCtx(user), &ListRoomsReq{})
	assert.Equal(t, codes.Internal, status.Code(err))
}
