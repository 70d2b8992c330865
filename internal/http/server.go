package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

type Server struct {
	log *slog.Logger

	httpAddr string
	gatherer prometheus.Gatherer
	checks   map[string]HealthCheck
	backend  GatewayBackend

	server    *http.Server
	isRunning bool
}

func New(options ...func(*Server)) *Server {
	server := &Server{checks: make(map[string]HealthCheck)}
	for _, option := range options {
		option(server)
	}
	if server.log == nil {
		server.log = slog.Default()
	}
	return server
}

func WithLogger(log *slog.Logger) func(*Server) {
	return func(s *Server) {
		s.log = log
	}
}

func WithHttpAddr(httpAddr string) func(*Server) {
	return func(s *Server) {
		s.httpAddr = httpAddr
	}
}

func WithPrometheus(gatherer prometheus.Gatherer) func(*Server) {
	return func(s *Server) {
		s.gatherer = gatherer
	}
}

func WithHealthCheck(name string, check HealthCheck) func(*Server) {
	return func(s *Server) {
		s.checks[name] = check
	}
}

// Router builds the routes: /healthz and, when enabled, /metrics and the
// /v1 gRPC gateway.
func (s *Server) Router() (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	if s.backend != nil {
		gw, err := s.gateway()
		if err != nil {
			return nil, err
		}
		r.Handle("/v1/*", gw)
	}
	return r, nil
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			s.log.Warn("health check failed", slog.String("check", name), sl.Err(err))
			http.Error(w, name+": "+err.Error(), http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) Start() {
	const op = "http.Start"
	log := s.log.With(slog.String("op", op))

	if s.isRunning {
		log.Error("http server is already running")
		return
	}

	router, err := s.Router()
	if err != nil {
		log.Error("can't build http routes", sl.Err(err))
		return
	}

	s.server = &http.Server{
		Addr:              s.httpAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.isRunning = true

	go func() {
		log.Info("http server is running", slog.String("address", s.httpAddr))
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error during start http server", sl.Err(err))
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	const op = "http.Stop"
	log := s.log.With(slog.String("op", op))

	if !s.isRunning {
		return
	}

	log.Info("http is stopping")

	err := s.server.Shutdown(ctx)
	if err != nil {
		log.Error("error during shutdown http server", sl.Err(err))
	}
	s.isRunning = false
}
