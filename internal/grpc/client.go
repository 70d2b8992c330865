package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is a typed stub over the three backend services.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Dial opens a plaintext connection; creds, when set, attach the access
// token to each call.
func Dial(address string, creds credentials.PerRPCCredentials) (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if creds != nil {
		opts = append(opts, grpc.WithPerRPCCredentials(creds))
	}
	return grpc.NewClient(address, opts...)
}

func (c *Client) CreateUser(ctx context.Context, req *CreateUserReq) (*CreateUserResp, error) {
	return invoke[CreateUserReq, CreateUserResp](ctx, c.conn, "/"+AuthServiceName+"/CreateUser", req)
}

func (c *Client) SignIn(ctx context.Context, req *SignInReq) (*SignInResp, error) {
	return invoke[SignInReq, SignInResp](ctx, c.conn, "/"+AuthServiceName+"/SignIn", req)
}

func (c *Client) SetDocument(ctx context.Context, req *SetDocumentReq) (*SetDocumentResp, error) {
	return invoke[SetDocumentReq, SetDocumentResp](ctx, c.conn, "/"+DocumentsServiceName+"/SetDocument", req)
}

func (c *Client) GetDocument(ctx context.Context, req *GetDocumentReq) (*GetDocumentResp, error) {
	return invoke[GetDocumentReq, GetDocumentResp](ctx, c.conn, "/"+DocumentsServiceName+"/GetDocument", req)
}

func (c *Client) SendMessage(ctx context.Context, req *SendMessageReq) (*SendMessageResp, error) {
	return invoke[SendMessageReq, SendMessageResp](ctx, c.conn, "/"+ChatServiceName+"/SendMessage", req)
}

func (c *Client) FetchMessages(ctx context.Context, req *FetchMessagesReq) (*FetchMessagesResp, error) {
	return invoke[FetchMessagesReq, FetchMessagesResp](ctx, c.conn, "/"+ChatServiceName+"/FetchMessages", req)
}

func (c *Client) CreateRoom(ctx context.Context, req *CreateRoomReq) (*CreateRoomResp, error) {
	return invoke[CreateRoomReq, CreateRoomResp](ctx, c.conn, "/"+ChatServiceName+"/CreateRoom", req)
}

func (c *Client) ListRooms(ctx context.Context, req *ListRoomsReq) (*ListRoomsResp, error) {
	return invoke[ListRoomsReq, ListRoomsResp](ctx, c.conn, "/"+ChatServiceName+"/ListRooms", req)
}
