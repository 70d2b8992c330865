package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

type ChatRepository struct {
	log   *slog.Logger
	chats ChatDataSource
	users UserDataSource
	local LocalUserDataSource
}

func NewChatRepository(log *slog.Logger, chats ChatDataSource, users UserDataSource, local LocalUserDataSource) *ChatRepository {
	return &ChatRepository{log: log, chats: chats, users: users, local: local}
}

// Fetch maps a page of stored messages to chats. Senders whose profile is
// gone get a nil User; an unknown local identity leaves IsFromCurrentUser nil.
func (c *ChatRepository) Fetch(ctx context.Context, chatRoomID string, before domain.ChatCursor, limit int) ([]domain.Chat, error) {
	dtos, err := c.chats.Fetch(ctx, chatRoomID, before, limit)
	if err != nil {
		return nil, err
	}

	current := c.currentUserID()
	senders := make(map[string]*domain.User)
	chats := make([]domain.Chat, 0, len(dtos))
	for _, dto := range dtos {
		sender, ok := senders[dto.UserID]
		if !ok {
			sender, err = c.sender(ctx, dto.UserID)
			if err != nil {
				return nil, err
			}
			senders[dto.UserID] = sender
		}
		chats = append(chats, toChat(dto, sender, current))
	}
	return chats, nil
}

// Send stores chat in the room and returns it as the backend recorded it.
func (c *ChatRepository) Send(ctx context.Context, chat domain.Chat, chatRoomID string) (domain.Chat, error) {
	dto, err := c.chats.Send(ctx, chat, chatRoomID)
	if err != nil {
		return domain.Chat{}, err
	}

	sender, err := c.sender(ctx, dto.UserID)
	if err != nil {
		return domain.Chat{}, err
	}
	return toChat(dto, sender, c.currentUserID()), nil
}

func (c *ChatRepository) sender(ctx context.Context, id string) (*domain.User, error) {
	dto, err := c.users.User(ctx, id)
	if errors.Is(err, errs.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user := toUser(dto)
	return &user, nil
}

func (c *ChatRepository) currentUserID() string {
	session, err := c.local.Load()
	if err != nil {
		if !errors.Is(err, errs.ErrSessionNotFound) {
			c.log.Warn("can't load session", sl.Err(err))
		}
		return ""
	}
	return session.UserID
}

func toChat(dto remote.ChatResponseDTO, sender *domain.User, currentUserID string) domain.Chat {
	chat := domain.Chat{ID: dto.ID, Message: dto.Message, Date: dto.Date, User: sender}
	if currentUserID != "" {
		fromCurrent := dto.UserID == currentUserID
		chat.IsFromCurrentUser = &fromCurrent
	}
	return chat
}
