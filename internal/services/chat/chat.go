package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
	"github.com/alexandernizov/mogakco/internal/storage"
	"github.com/google/uuid"
)

type ChatStorage interface {
	WithTx(ctx context.Context, tFunc func(ctx context.Context) error) error
	CreateRoom(ctx context.Context, room domain.Room) (*domain.Room, error)
	GetRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	ListRooms(ctx context.Context, userID uuid.UUID) ([]domain.Room, error)
	CreateMessage(ctx context.Context, message domain.Message) (*domain.Message, error)
	GetMessages(ctx context.Context, roomID uuid.UUID, before domain.MessageCursor, limit int) ([]domain.Message, error)
	CreateOutbox(ctx context.Context, outbox domain.Outbox) error
}

var (
	ErrInternal     = errors.New("internal error")
	ErrEmptyMessage = errors.New("message shouldn't be empty")
)

type ChatService struct {
	log         *slog.Logger
	chatOptions ChatOptions
	chatStorage ChatStorage
	now         func() time.Time
}

type ChatOptions struct {
	PageSize    int
	MaxPageSize int
}

func New(log *slog.Logger, chatOptions ChatOptions, chatStorage ChatStorage) *ChatService {
	return &ChatService{log: log, chatOptions: chatOptions, chatStorage: chatStorage, now: time.Now}
}

func (c *ChatService) CreateRoom(ctx context.Context, studyID string, members []uuid.UUID) (*domain.Room, error) {
	const op = "chat.CreateRoom"
	log := c.log.With(slog.String("op", op))

	room := domain.Room{
		ID:        uuid.New(),
		StudyID:   studyID,
		UserIDs:   members,
		CreatedAt: c.timestamp(),
	}

	created, err := c.chatStorage.CreateRoom(ctx, room)
	if err != nil {
		log.Error("can't create room", sl.Err(err))
		return nil, ErrInternal
	}
	return created, nil
}

func (c *ChatService) ListRooms(ctx context.Context, userID uuid.UUID) ([]domain.Room, error) {
	rooms, err := c.chatStorage.ListRooms(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return rooms, nil
}

func (c *ChatService) memberRoom(ctx context.Context, roomID, userID uuid.UUID) (*domain.Room, error) {
	room, err := c.chatStorage.GetRoom(ctx, roomID)
	if errors.Is(err, storage.ErrRoomNotFound) {
		return nil, errs.ErrChatRoomNotFound
	}
	if err != nil {
		return nil, ErrInternal
	}
	if !slices.Contains(room.UserIDs, userID) {
		return nil, errs.ErrNotRoomMember
	}
	return room, nil
}

// SendMessage stores the message and its outbox record in one transaction.
func (c *ChatService) SendMessage(ctx context.Context, roomID, authorID uuid.UUID, body string) (*domain.Message, error) {
	const op = "chat.SendMessage"
	log := c.log.With(slog.String("op", op))

	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := c.memberRoom(ctx, roomID, authorID); err != nil {
		return nil, err
	}

	message := domain.Message{
		ID:         uuid.New(),
		ChatRoomID: roomID,
		UserID:     authorID,
		Body:       body,
		CreatedAt:  c.timestamp(),
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var created *domain.Message
	err = c.chatStorage.WithTx(ctx, func(ctx context.Context) error {
		var err error
		if created, err = c.chatStorage.CreateMessage(ctx, message); err != nil {
			return err
		}
		return c.chatStorage.CreateOutbox(ctx, domain.Outbox{Key: message.ID, Topic: domain.MessageTopic, Payload: payload})
	})
	if err != nil {
		log.Error("can't store message", sl.Err(err))
		return nil, ErrInternal
	}

	return created, nil
}

// FetchMessages returns a page of messages older than before, oldest first.
// A zero before means "latest page".
func (c *ChatService) FetchMessages(ctx context.Context, roomID, userID uuid.UUID, before domain.MessageCursor, limit int) ([]domain.Message, error) {
	if _, err := c.memberRoom(ctx, roomID, userID); err != nil {
		return nil, err
	}

	if before.CreatedAt.IsZero() {
		before = domain.MessageCursor{CreatedAt: c.timestamp().Add(time.Second)}
	}
	if limit <= 0 {
		limit = c.chatOptions.PageSize
	}
	if c.chatOptions.MaxPageSize > 0 && limit > c.chatOptions.MaxPageSize {
		limit = c.chatOptions.MaxPageSize
	}

	messages, err := c.chatStorage.GetMessages(ctx, roomID, before, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return messages, nil
}

// timestamp is the current time at the precision postgres stores, so a
// returned record can be used as a paging cursor as is.
func (c *ChatService) timestamp() time.Time {
	return c.now().Truncate(time.Microsecond)
}
