package grpc

import (
	"context"
	"errors"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"github.com/alexandernizov/mogakco/internal/services/chat"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ChatServiceName = "mogakco.Chat"

type ChatProvider interface {
	CreateRoom(ctx context.Context, studyID string, members []uuid.UUID) (*domain.Room, error)
	ListRooms(ctx context.Context, userID uuid.UUID) ([]domain.Room, error)
	SendMessage(ctx context.Context, roomID, authorID uuid.UUID, body string) (*domain.Message, error)
	FetchMessages(ctx context.Context, roomID, userID uuid.UUID, before domain.MessageCursor, limit int) ([]domain.Message, error)
}

type ChatHandler interface {
	SendMessage(ctx context.Context, req *SendMessageReq) (*SendMessageResp, error)
	FetchMessages(ctx context.Context, req *FetchMessagesReq) (*FetchMessagesResp, error)
	CreateRoom(ctx context.Context, req *CreateRoomReq) (*CreateRoomResp, error)
	ListRooms(ctx context.Context, req *ListRoomsReq) (*ListRoomsResp, error)
}

var ChatServiceDesc = grpc.ServiceDesc{
	ServiceName: ChatServiceName,
	HandlerType: (*ChatHandler)(nil),
	Methods: []grpc.MethodDesc{
		unary(ChatServiceName, "SendMessage", ChatHandler.SendMessage),
		unary(ChatServiceName, "FetchMessages", ChatHandler.FetchMessages),
		unary(ChatServiceName, "CreateRoom", ChatHandler.CreateRoom),
		unary(ChatServiceName, "ListRooms", ChatHandler.ListRooms),
	},
	Metadata: "mogakco.proto",
}

type ChatServer struct {
	provider ChatProvider
}

func NewChatServer(provider ChatProvider) *ChatServer {
	return &ChatServer{provider: provider}
}

func (c *ChatServer) SendMessage(ctx context.Context, req *SendMessageReq) (*SendMessageResp, error) {
	user, err := userFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	roomID, err := uuid.Parse(req.ChatRoomID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	msg, err := c.provider.SendMessage(ctx, roomID, user, req.Message)
	if err != nil {
		return nil, chatStatus(err)
	}

	return &SendMessageResp{Message: toMessageDTO(*msg)}, nil
}

func (c *ChatServer) FetchMessages(ctx context.Context, req *FetchMessagesReq) (*FetchMessagesResp, error) {
	user, err := userFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	roomID, err := uuid.Parse(req.ChatRoomID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if req.Limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit should not be negative")
	}

	before := domain.MessageCursor{CreatedAt: req.Before}
	if req.BeforeID != "" {
		before.ID, err = uuid.Parse(req.BeforeID)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}

	messages, err := c.provider.FetchMessages(ctx, roomID, user, before, req.Limit)
	if err != nil {
		return nil, chatStatus(err)
	}

	res := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		res = append(res, toMessageDTO(m))
	}
	return &FetchMessagesResp{Messages: res}, nil
}

func (c *ChatServer) CreateRoom(ctx context.Context, req *CreateRoomReq) (*CreateRoomResp, error) {
	user, err := userFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	members := []uuid.UUID{user}
	for _, id := range req.UserIDs {
		member, err := uuid.Parse(id)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		if member != user {
			members = append(members, member)
		}
	}

	room, err := c.provider.CreateRoom(ctx, req.StudyID, members)
	if err != nil {
		return nil, chatStatus(err)
	}

	return &CreateRoomResp{Room: toRoomDTO(*room)}, nil
}

func (c *ChatServer) ListRooms(ctx context.Context, _ *ListRoomsReq) (*ListRoomsResp, error) {
	user, err := userFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	rooms, err := c.provider.ListRooms(ctx, user)
	if err != nil {
		return nil, chatStatus(err)
	}

	res := make([]RoomDTO, 0, len(rooms))
	for _, r := range rooms {
		res = append(res, toRoomDTO(r))
	}
	return &ListRoomsResp{Rooms: res}, nil
}

func chatStatus(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrChatRoomNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, errs.ErrNotRoomMember):
		return status.Error(codes.PermissionDenied, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toMessageDTO(m domain.Message) MessageDTO {
	return MessageDTO{
		ID:         m.ID.String(),
		ChatRoomID: m.ChatRoomID.String(),
		UserID:     m.UserID.String(),
		Message:    m.Body,
		Date:       m.CreatedAt,
	}
}

func toRoomDTO(r domain.Room) RoomDTO {
	ids := make([]string, 0, len(r.UserIDs))
	for _, id := range r.UserIDs {
		ids = append(ids, id.String())
	}
	return RoomDTO{ID: r.ID.String(), StudyID: r.StudyID, UserIDs: ids, CreatedAt: r.CreatedAt}
}

func userFromCtx(ctx context.Context) (uuid.UUID, error) {
	user, ok := ctx.Value(domain.UserCtxKey{}).(uuid.UUID)
	if !ok || user == uuid.Nil {
		return uuid.Nil, errs.ErrUserNotFound
	}
	return user, nil
}
