package suite

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/config"
	"github.com/alexandernizov/mogakco/internal/grpc"
)

type Suite struct {
	*testing.T
	Cfg     *config.Config
	Session *remote.Session
	Client  *grpc.Client
	Auth    *remote.AuthService
}

// New connects to the server configured in configs/local.yaml. The test is
// skipped when nothing listens there.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()
	t.Parallel()

	cfg := config.MustLoadByPath("../configs/local.yaml")

	conn, err := net.DialTimeout("tcp", cfg.GrpcConfig.Address(), time.Second)
	if err != nil {
		t.Skipf("grpc server is not reachable at %s: %v", cfg.GrpcConfig.Address(), err)
	}
	_ = conn.Close()

	ctx, cancelCtx := context.WithTimeout(context.Background(), cfg.GrpcConfig.RequestTimeout)

	session := remote.NewSession("", "")
	cc, err := grpc.Dial(cfg.GrpcConfig.Address(), session)
	if err != nil {
		t.Fatalf("grpc server connection failed: %v", err)
	}

	t.Cleanup(func() {
		t.Helper()
		cancelCtx()
		_ = cc.Close()
	})

	client := grpc.NewClient(cc)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return ctx, &Suite{
		T:       t,
		Cfg:     cfg,
		Session: session,
		Client:  client,
		Auth:    remote.NewAuthService(log, client, client, session),
	}
}
