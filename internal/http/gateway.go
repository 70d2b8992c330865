package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	api "github.com/alexandernizov/mogakco/internal/grpc"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

// GatewayBackend is the part of the gRPC surface served as JSON over HTTP.
type GatewayBackend interface {
	CreateUser(ctx context.Context, req *api.CreateUserReq) (*api.CreateUserResp, error)
	SignIn(ctx context.Context, req *api.SignInReq) (*api.SignInResp, error)
	ListRooms(ctx context.Context, req *api.ListRoomsReq) (*api.ListRoomsResp, error)
	CreateRoom(ctx context.Context, req *api.CreateRoomReq) (*api.CreateRoomResp, error)
	FetchMessages(ctx context.Context, req *api.FetchMessagesReq) (*api.FetchMessagesResp, error)
	SendMessage(ctx context.Context, req *api.SendMessageReq) (*api.SendMessageResp, error)
}

func WithGrpcGateway(backend GatewayBackend) func(*Server) {
	return func(s *Server) {
		s.backend = backend
	}
}

// gateway routes /v1 requests to the gRPC services. The Authorization header
// is passed on as call metadata.
func (s *Server) gateway() (http.Handler, error) {
	const op = "http.gateway"

	b := s.backend
	mux := runtime.NewServeMux()
	routes := []struct {
		method, pattern string
		handler         runtime.HandlerFunc
	}{
		{http.MethodPost, "/v1/auth/signup", forward(s.log, b.CreateUser, nil)},
		{http.MethodPost, "/v1/auth/signin", forward(s.log, b.SignIn, nil)},
		{http.MethodGet, "/v1/rooms", forward(s.log, b.ListRooms, nil)},
		{http.MethodPost, "/v1/rooms", forward(s.log, b.CreateRoom, nil)},
		{http.MethodGet, "/v1/rooms/{room_id}/messages", forward(s.log, b.FetchMessages, fetchParams)},
		{http.MethodPost, "/v1/rooms/{room_id}/messages", forward(s.log, b.SendMessage, func(_ *http.Request, params map[string]string, req *api.SendMessageReq) error {
			req.ChatRoomID = params["room_id"]
			return nil
		})},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, route.handler); err != nil {
			s.log.Error("can't register gateway route", slog.String("op", op), slog.String("pattern", route.pattern), sl.Err(err))
			return nil, err
		}
	}
	return mux, nil
}

func fetchParams(r *http.Request, params map[string]string, req *api.FetchMessagesReq) error {
	q := r.URL.Query()
	req.ChatRoomID = params["room_id"]
	req.BeforeID = q.Get("before_id")
	if v := q.Get("before"); v != "" {
		before, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return err
		}
		req.Before = before
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		req.Limit = limit
	}
	return nil
}

// forward decodes a JSON body (when present) into Req, lets fill add path and
// query values, and writes the call result back as JSON.
func forward[Req, Resp any](
	log *slog.Logger,
	call func(context.Context, *Req) (*Resp, error),
	fill func(r *http.Request, params map[string]string, req *Req) error,
) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		var req Req
		if r.ContentLength != 0 && r.Method != http.MethodGet {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
				return
			}
		}
		if fill != nil {
			if err := fill(r, params, &req); err != nil {
				writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
				return
			}
		}

		ctx := r.Context()
		if auth := r.Header.Get("Authorization"); auth != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, "authorization", auth)
		}

		resp, err := call(ctx, &req)
		if err != nil {
			st := status.Convert(err)
			log.Debug("gateway call failed", slog.String("path", r.URL.Path), sl.Err(err))
			writeJSON(w, runtime.HTTPStatusFromCode(st.Code()), errorBody{Error: st.Message()})
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
