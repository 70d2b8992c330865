package remote

import (
	"context"

	"github.com/alexandernizov/mogakco/internal/domain"
	api "github.com/alexandernizov/mogakco/internal/grpc"
)

type ChatBackend interface {
	SendMessage(ctx context.Context, req *api.SendMessageReq) (*api.SendMessageResp, error)
	FetchMessages(ctx context.Context, req *api.FetchMessagesReq) (*api.FetchMessagesResp, error)
	CreateRoom(ctx context.Context, req *api.CreateRoomReq) (*api.CreateRoomResp, error)
	ListRooms(ctx context.Context, req *api.ListRoomsReq) (*api.ListRoomsResp, error)
}

type ChatDataSource struct {
	backend ChatBackend
}

func NewChatDataSource(backend ChatBackend) *ChatDataSource {
	return &ChatDataSource{backend: backend}
}

// Fetch returns up to limit messages older than before, oldest first. A zero
// before asks for the latest page.
func (c *ChatDataSource) Fetch(ctx context.Context, chatRoomID string, before domain.ChatCursor, limit int) ([]ChatResponseDTO, error) {
	resp, err := c.backend.FetchMessages(ctx, &api.FetchMessagesReq{
		ChatRoomID: chatRoomID,
		Before:     before.Date,
		BeforeID:   before.ID,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	res := make([]ChatResponseDTO, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		res = append(res, toChatDTO(m))
	}
	return res, nil
}

func (c *ChatDataSource) Send(ctx context.Context, chat domain.Chat, chatRoomID string) (ChatResponseDTO, error) {
	resp, err := c.backend.SendMessage(ctx, &api.SendMessageReq{ChatRoomID: chatRoomID, Message: chat.Message})
	if err != nil {
		return ChatResponseDTO{}, err
	}
	return toChatDTO(resp.Message), nil
}

func toChatDTO(m api.MessageDTO) ChatResponseDTO {
	return ChatResponseDTO{
		ID:         m.ID,
		ChatRoomID: m.ChatRoomID,
		UserID:     m.UserID,
		Message:    m.Message,
		Date:       m.Date,
	}
}

type ChatRoomDataSource struct {
	backend ChatBackend
}

func NewChatRoomDataSource(backend ChatBackend) *ChatRoomDataSource {
	return &ChatRoomDataSource{backend: backend}
}

// List returns the rooms of the signed-in user.
func (c *ChatRoomDataSource) List(ctx context.Context) ([]ChatRoomResponseDTO, error) {
	resp, err := c.backend.ListRooms(ctx, &api.ListRoomsReq{})
	if err != nil {
		return nil, err
	}

	res := make([]ChatRoomResponseDTO, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		res = append(res, toRoomDTO(r))
	}
	return res, nil
}

func (c *ChatRoomDataSource) Create(ctx context.Context, studyID string, userIDs []string) (ChatRoomResponseDTO, error) {
	resp, err := c.backend.CreateRoom(ctx, &api.CreateRoomReq{StudyID: studyID, UserIDs: userIDs})
	if err != nil {
		return ChatRoomResponseDTO{}, err
	}
	return toRoomDTO(resp.Room), nil
}

func toRoomDTO(r api.RoomDTO) ChatRoomResponseDTO {
	return ChatRoomResponseDTO{ID: r.ID, StudyID: r.StudyID, UserIDs: r.UserIDs, CreatedAt: r.CreatedAt}
}
