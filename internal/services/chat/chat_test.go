package chat

import (
	"context"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"github.com/alexandernizov/mogakco/internal/services/chat/mocks"
	"github.com/alexandernizov/mogakco/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	memberUuidTest   = uuid.MustParse("8ee4e645-b894-4477-820b-48381e10677f")
	strangerUuidTest = uuid.MustParse("4f6d5ad2-8f5e-4a1f-9b55-1d7c4a0e4c11")
	roomUuidTest     = uuid.MustParse("30d88aa9-b8a5-4cfb-af4b-c043278e111e")
	nowTest          = time.Date(2022, 11, 16, 12, 0, 0, 0, time.UTC)
	roomTest         = &domain.Room{ID: roomUuidTest, StudyID: "study", UserIDs: []uuid.UUID{memberUuidTest}, CreatedAt: nowTest}
)

type mockArgs struct {
	methodName string
	arguments  []any
	returning  []any
}

func NewMockService(t *testing.T, inputMocks []mockArgs) *ChatService {
	chatStorage := mocks.NewChatStorage(t)
	for _, m := range inputMocks {
		chatStorage.On(m.methodName, m.arguments...).Return(m.returning...).Once()
	}
	mockService := ChatService{
		log:         slog.Default(),
		chatStorage: chatStorage,
		chatOptions: ChatOptions{PageSize: 30, MaxPageSize: 100},
		now:         func() time.Time { return nowTest },
	}
	return &mockService
}

func TestChatService_CreateRoom(t *testing.T) {
	echoRoom := func(ctx context.Context, r domain.Room) *domain.Room { return &r }

	c := NewMockService(t, []mockArgs{
		{methodName: "CreateRoom", arguments: []any{mock.Anything, mock.Anything}, returning: []any{echoRoom, nil}},
	})

	got, err := c.CreateRoom(context.TODO(), "study", []uuid.UUID{memberUuidTest})

	assert.NoError(t, err)
	assert.Equal(t, "study", got.StudyID)
	assert.Equal(t, []uuid.UUID{memberUuidTest}, got.UserIDs)
	assert.Equal(t, nowTest, got.CreatedAt)
}

func TestChatService_SendMessage(t *testing.T) {
	echoMessage := func(ctx context.Context, m domain.Message) *domain.Message { return &m }

	tests := []struct {
		name     string
		author   uuid.UUID
		body     string
		mockArgs []mockArgs
		wantErr  error
	}{
		{
			name:   "success",
			author: memberUuidTest,
			body:   "hello",
			mockArgs: []mockArgs{
				{methodName: "GetRoom", arguments: []any{mock.Anything, roomUuidTest}, returning: []any{roomTest, nil}},
				{methodName: "WithTx", arguments: []any{mock.Anything, mock.Anything}, returning: []any{nil}},
				{methodName: "CreateMessage", arguments: []any{mock.Anything, mock.Anything}, returning: []any{echoMessage, nil}},
				{methodName: "CreateOutbox", arguments: []any{mock.Anything, mock.MatchedBy(func(o domain.Outbox) bool {
					return o.Topic == domain.MessageTopic && len(o.Payload) > 0
				})}, returning: []any{nil}},
			},
		},
		{
			name:    "empty_message",
			author:  memberUuidTest,
			body:    "  ",
			wantErr: ErrEmptyMessage,
		},
		{
			name:   "not_a_member",
			author: strangerUuidTest,
			body:   "hello",
			mockArgs: []mockArgs{
				{methodName: "GetRoom", arguments: []any{mock.Anything, roomUuidTest}, returning: []any{roomTest, nil}},
			},
			wantErr: errs.ErrNotRoomMember,
		},
		{
			name:   "room_not_found",
			author: memberUuidTest,
			body:   "hello",
			mockArgs: []mockArgs{
				{methodName: "GetRoom", arguments: []any{mock.Anything, roomUuidTest}, returning: []any{nil, storage.ErrRoomNotFound}},
			},
			wantErr: errs.ErrChatRoomNotFound,
		},
		{
			name:   "outbox_failed",
			author: memberUuidTest,
			body:   "hello",
			mockArgs: []mockArgs{
				{methodName: "GetRoom", arguments: []any{mock.Anything, roomUuidTest}, returning: []any{roomTest, nil}},
				{methodName: "WithTx", arguments: []any{mock.Anything, mock.Anything}, returning: []any{nil}},
				{methodName: "CreateMessage", arguments: []any{mock.Anything, mock.Anything}, returning: []any{echoMessage, nil}},
				{methodName: "CreateOutbox", arguments: []any{mock.Anything, mock.Anything}, returning: []any{storage.ErrInternal}},
			},
			wantErr: ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewMockService(t, tt.mockArgs)

			got, err := c.SendMessage(context.TODO(), roomUuidTest, tt.author, tt.body)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.body, got.Body)
			assert.Equal(t, tt.author, got.UserID)
			assert.Equal(t, roomUuidTest, got.ChatRoomID)
			assert.Equal(t, nowTest, got.CreatedAt)
		})
	}
}

func TestChatService_FetchMessages(t *testing.T) {
	page := []domain.Message{{ID: uuid.New(), ChatRoomID: roomUuidTest, UserID: memberUuidTest, Body: "hi", CreatedAt: nowTest}}
	before := domain.MessageCursor{CreatedAt: nowTest.Add(-time.Hour), ID: uuid.New()}

	tests := []struct {
		name     string
		before   domain.MessageCursor
		limit    int
		mockArgs []mockArgs
		want     []domain.Message
	}{
		{
			name:   "latest_page_default_size",
			before: domain.MessageCursor{},
			limit:  0,
			mockArgs: []mockArgs{
				{methodName: "GetRoom", arguments: []any{mock.Anything, roomUuidTest}, returning: []any{roomTest, nil}},
				{methodName: "GetMessages", arguments: []any{mock.Anything, roomUuidTest, domain.MessageCursor{CreatedAt: nowTest.Add(time.Second)}, 30}, returning: []any{page, nil}},
			},
			want: page,
		},
		{
			name:   "older_page_clamped",
			before: before,
			limit:  1000,
			mockArgs: []mockArgs{
				{methodName: "GetRoom", arguments: []any{mock.Anything, roomUuidTest}, returning: []any{roomTest, nil}},
				{methodName: "GetMessages", arguments: []any{mock.Anything, roomUuidTest, before, 100}, returning: []any{[]domain.Message{}, nil}},
			},
			want: []domain.Message{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewMockService(t, tt.mockArgs)

			got, err := c.FetchMessages(context.TODO(), roomUuidTest, memberUuidTest, tt.before, tt.limit)
			if err != nil {
				t.Errorf("ChatService.FetchMessages() error = %v", err)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChatService.FetchMessages() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChatService_SendMessageStoredPrecision(t *testing.T) {
	echoMessage := func(ctx context.Context, m domain.Message) *domain.Message { return &m }

	c := NewMockService(t, []mockArgs{
		{methodName: "GetRoom", arguments: []any{mock.Anything, roomUuidTest}, returning: []any{roomTest, nil}},
		{methodName: "WithTx", arguments: []any{mock.Anything, mock.Anything}, returning: []any{nil}},
		{methodName: "CreateMessage", arguments: []any{mock.Anything, mock.Anything}, returning: []any{echoMessage, nil}},
		{methodName: "CreateOutbox", arguments: []any{mock.Anything, mock.Anything}, returning: []any{nil}},
	})
	c.now = func() time.Time { return nowTest.Add(1234567 * time.Nanosecond) }

	got, err := c.SendMessage(context.TODO(), roomUuidTest, memberUuidTest, "hello")

	require.NoError(t, err)
	assert.Equal(t, nowTest.Add(1234*time.Microsecond), got.CreatedAt)
	assert.Zero(t, got.CreatedAt.Nanosecond()%1000)
}
