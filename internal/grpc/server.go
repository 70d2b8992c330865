package grpc

import (
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

var (
	ErrServerIsAlreadyRunning = errors.New("server is already running")
)

type Server struct {
	log       *slog.Logger
	server    *grpc.Server
	listener  net.Listener
	isRunning bool
}

func NewServer(log *slog.Logger) *Server {
	return &Server{log: log}
}

type ServerOptions struct {
	Address        string
	RequestTimeout time.Duration
	Metrics        *Metrics

	Authenticator
	AuthProvider
	DocumentProvider
	ChatProvider
}

// Register mounts the three services on s.
func Register(s grpc.ServiceRegistrar, opt ServerOptions) {
	s.RegisterService(&AuthServiceDesc, NewAuthServer(opt.AuthProvider))
	s.RegisterService(&DocumentsServiceDesc, NewDocumentsServer(opt.DocumentProvider))
	s.RegisterService(&ChatServiceDesc, NewChatServer(opt.ChatProvider))
}

func (s *Server) interceptors(opt ServerOptions) []grpc.UnaryServerInterceptor {
	chain := []grpc.UnaryServerInterceptor{unaryLoggingInterceptor(s.log)}
	if opt.Metrics != nil {
		chain = append(chain, unaryMetricsInterceptor(opt.Metrics))
	}
	return append(chain,
		unaryTimeoutInterceptor(opt.RequestTimeout),
		unaryAuthInterceptor(s.log, opt.Authenticator),
	)
}

func (s *Server) Start(opt ServerOptions) error {
	const op = "grpc.Start"
	log := s.log.With(slog.String("op", op))

	if s.isRunning {
		log.Error("can't start server", sl.Err(ErrServerIsAlreadyRunning))
		return ErrServerIsAlreadyRunning
	}

	listener, err := net.Listen("tcp", opt.Address)
	if err != nil {
		log.Error("can't make listener", sl.Err(err))
		return err
	}
	s.listener = listener

	s.server = grpc.NewServer(grpc.ChainUnaryInterceptor(s.interceptors(opt)...))
	Register(s.server, opt)
	reflection.Register(s.server)

	log.Info("grpc server is running", slog.String("address", listener.Addr().String()))

	s.isRunning = true

	go func() {
		err := s.server.Serve(listener)
		if err != nil {
			s.log.Error("error with grpc serve listener", sl.Err(err))
		}
	}()
	return nil
}

// Addr is the bound address, useful when started on port 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) Stop() {
	const op = "grpc.Stop"
	log := s.log.With(slog.String("op", op))

	if !s.isRunning {
		return
	}

	log.Info("grpc is stopping")

	s.server.GracefulStop()
	s.isRunning = false
}
