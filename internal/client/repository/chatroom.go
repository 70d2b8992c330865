package repository

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/domain"
)

type ChatRoomRepository struct {
	rooms ChatRoomDataSource
}

func NewChatRoomRepository(rooms ChatRoomDataSource) *ChatRoomRepository {
	return &ChatRoomRepository{rooms: rooms}
}

func (c *ChatRoomRepository) List(ctx context.Context) ([]domain.ChatRoom, error) {
	dtos, err := c.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	rooms := make([]domain.ChatRoom, 0, len(dtos))
	for _, dto := range dtos {
		rooms = append(rooms, toChatRoom(dto))
	}
	return rooms, nil
}

func (c *ChatRoomRepository) Create(ctx context.Context, studyID string, userIDs []string) (domain.ChatRoom, error) {
	dto, err := c.rooms.Create(ctx, studyID, userIDs)
	if err != nil {
		return domain.ChatRoom{}, err
	}
	return toChatRoom(dto), nil
}

func toChatRoom(dto remote.ChatRoomResponseDTO) domain.ChatRoom {
	return domain.ChatRoom{ID: dto.ID, StudyID: dto.StudyID, UserIDs: dto.UserIDs, CreatedAt: dto.CreatedAt}
}
