package remote

import (
	"context"
	"log/slog"

	api "github.com/alexandernizov/mogakco/internal/grpc"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

// UserCollection holds one profile document per account, keyed by its ID.
const UserCollection = "User"

type AuthBackend interface {
	CreateUser(ctx context.Context, req *api.CreateUserReq) (*api.CreateUserResp, error)
	SignIn(ctx context.Context, req *api.SignInReq) (*api.SignInResp, error)
}

type DocumentBackend interface {
	SetDocument(ctx context.Context, req *api.SetDocumentReq) (*api.SetDocumentResp, error)
	GetDocument(ctx context.Context, req *api.GetDocumentReq) (*api.GetDocumentResp, error)
}

type AuthService struct {
	log       *slog.Logger
	auth      AuthBackend
	documents DocumentBackend
	session   *Session
}

func NewAuthService(log *slog.Logger, auth AuthBackend, documents DocumentBackend, session *Session) *AuthService {
	return &AuthService{log: log, auth: auth, documents: documents, session: session}
}

// Signup creates the account, then writes its profile document with the new
// account's token. The write is only attempted once the account exists; a
// failed write leaves the account in place and the previous session
// restored. Backend errors are returned as is.
func (a *AuthService) Signup(ctx context.Context, req SignupRequest) (SignupResponse, error) {
	const op = "remote.Signup"
	log := a.log.With(slog.String("op", op))

	created, err := a.auth.CreateUser(ctx, &api.CreateUserReq{Email: req.Email, Password: req.Password})
	if err != nil {
		log.Debug("can't create account", sl.Err(err))
		return SignupResponse{}, err
	}
	prevID, prevToken := a.session.UserID(), a.session.Token()
	a.session.Set(created.ID, created.Token)

	_, err = a.documents.SetDocument(ctx, &api.SetDocumentReq{
		Collection: UserCollection,
		ID:         created.ID,
		Fields: map[string]any{
			"id":        created.ID,
			"email":     req.Email,
			"name":      req.Name,
			"introduce": req.Introduce,
			"languages": stringsToAny(req.Languages),
			"careers":   stringsToAny(req.Careers),
			"categorys": stringsToAny(req.Categorys),
		},
	})
	if err != nil {
		log.Debug("can't write profile document", slog.String("id", created.ID), sl.Err(err))
		a.session.Set(prevID, prevToken)
		return SignupResponse{}, err
	}

	return SignupResponse{
		ID:        created.ID,
		Email:     req.Email,
		Name:      req.Name,
		Introduce: req.Introduce,
		Languages: req.Languages,
		Careers:   req.Careers,
		Categorys: req.Categorys,
	}, nil
}

// Login returns the account ID and keeps the issued token for later calls.
func (a *AuthService) Login(ctx context.Context, req EmailLoginData) (string, error) {
	resp, err := a.auth.SignIn(ctx, &api.SignInReq{Email: req.Email, Password: req.Password})
	if err != nil {
		return "", err
	}
	a.session.Set(resp.ID, resp.Token)
	return resp.ID, nil
}

func stringsToAny(in []string) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		out = append(out, s)
	}
	return out
}
