package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Every RPC carries a google.protobuf.Struct built from the JSON form of the
// request and response types below, so the services need no generated code.

type CreateUserReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserResp struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

type SignInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResp struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

type SetDocumentReq struct {
	Collection string         `json:"collection"`
	ID         string         `json:"id"`
	Fields     map[string]any `json:"fields"`
}

type SetDocumentResp struct{}

type GetDocumentReq struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
}

type GetDocumentResp struct {
	Fields map[string]any `json:"fields"`
}

type MessageDTO struct {
	ID         string    `json:"id"`
	ChatRoomID string    `json:"chatRoomID"`
	UserID     string    `json:"userID"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
}

type SendMessageReq struct {
	ChatRoomID string `json:"chatRoomID"`
	Message    string `json:"message"`
}

type SendMessageResp struct {
	Message MessageDTO `json:"message"`
}

type FetchMessagesReq struct {
	ChatRoomID string    `json:"chatRoomID"`
	Before     time.Time `json:"before"`
	BeforeID   string    `json:"beforeID,omitempty"`
	Limit      int       `json:"limit"`
}

type FetchMessagesResp struct {
	Messages []MessageDTO `json:"messages"`
}

type RoomDTO struct {
	ID        string    `json:"id"`
	StudyID   string    `json:"studyID"`
	UserIDs   []string  `json:"userIDs"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateRoomReq struct {
	StudyID string   `json:"studyID"`
	UserIDs []string `json:"userIDs"`
}

type CreateRoomResp struct {
	Room RoomDTO `json:"room"`
}

type ListRoomsReq struct{}

type ListRoomsResp struct {
	Rooms []RoomDTO `json:"rooms"`
}

func encode(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return structpb.NewStruct(fields)
}

func decode(s *structpb.Struct, v any) error {
	raw, err := json.Marshal(s.AsMap())
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// unary builds the method descriptor for a typed handler of service S.
func unary[S any, Req any, Resp any](service, method string, fn func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method

	call := func(srv any, ctx context.Context, in any) (any, error) {
		var req Req
		if err := decode(in.(*structpb.Struct), &req); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		resp, err := fn(srv.(S), ctx, &req)
		if err != nil {
			return nil, err
		}
		out, err := encode(resp)
		if err != nil {
			return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
		}
		return out, nil
	}

	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv, ctx, req)
			})
		},
	}
}

func invoke[Req any, Resp any](ctx context.Context, conn grpc.ClientConnInterface, method string, req *Req) (*Resp, error) {
	in, err := encode(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	out := new(structpb.Struct)
	if err := conn.Invoke(ctx, method, in, out); err != nil {
		return nil, err
	}
	var resp Resp
	if err := decode(out, &resp); err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("decode response: %v", err))
	}
	return &resp, nil
}
