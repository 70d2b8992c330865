package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/alexandernizov/mogakco/internal/config"
	"github.com/alexandernizov/mogakco/internal/grpc"
	"github.com/alexandernizov/mogakco/internal/http"
	"github.com/alexandernizov/mogakco/internal/outbox"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
	"github.com/alexandernizov/mogakco/internal/services/auth"
	"github.com/alexandernizov/mogakco/internal/services/chat"
	"github.com/alexandernizov/mogakco/internal/services/documents"
	"github.com/alexandernizov/mogakco/internal/storage/postgres"
	"github.com/alexandernizov/mogakco/internal/storage/redis"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	//Config
	cfg := config.MustLoad()

	//Logger
	log := setupLogger(cfg.Env)
	log.Info("starting application", slog.String("env", cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	//Connect postgres
	pgDB, err := postgres.NewWithOptions(log, postgres.ConnectOptions{
		Host:     cfg.PgHost,
		Port:     strconv.Itoa(cfg.PgPort),
		User:     cfg.PgUser,
		Password: cfg.PgPassword,
		DBname:   cfg.PgDatabase,
	})
	if err != nil {
		log.Error("can't connect to postgres", sl.Err(err))
		os.Exit(1)
	}
	defer pgDB.Close()

	if err := pgDB.Migrate(ctx); err != nil {
		log.Error("can't migrate postgres", sl.Err(err))
		os.Exit(1)
	}

	//Connect redis
	redisDB, err := redis.NewWithOptions(log, redis.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Error("can't connect to redis", sl.Err(err))
		os.Exit(1)
	}
	defer redisDB.Close()

	//Services
	authService := auth.New(log, pgDB, cfg.TokenTTL, []byte(cfg.Secret))
	documentService := documents.New(log, redisDB)
	chatService := chat.New(log, chat.ChatOptions{PageSize: cfg.PageSize, MaxPageSize: cfg.MaxPageSize}, pgDB)

	//Outbox
	var publisher *outbox.Publisher
	if len(cfg.Brokers) > 0 {
		producer, err := outbox.NewProducer(outbox.ConnectOptions{Brokers: cfg.Brokers})
		if err != nil {
			log.Error("can't connect to kafka, outbox is disabled", sl.Err(err))
		} else {
			publisher = outbox.New(log, producer, pgDB, cfg.OutboxInterval)
			go publisher.ServePublish(ctx)
		}
	}

	//Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	//Start Grpc Server
	server := grpc.NewServer(log)
	gOpt := grpc.ServerOptions{
		Address:        cfg.GrpcConfig.Address(),
		RequestTimeout: cfg.RequestTimeout,
		Metrics:        grpc.NewMetrics(registry),

		Authenticator:    authService,
		AuthProvider:     authService,
		DocumentProvider: documentService,
		ChatProvider:     chatService,
	}
	if err := server.Start(gOpt); err != nil {
		log.Error("can't start grpc server", sl.Err(err))
		os.Exit(1)
	}

	//Start Http Server
	httpOpts := []func(*http.Server){
		http.WithLogger(log),
		http.WithHttpAddr(cfg.HttpAddr),
		http.WithHealthCheck("postgres", pgDB.Ping),
		http.WithHealthCheck("redis", redisDB.Ping),
	}
	if cfg.Prometheus {
		httpOpts = append(httpOpts, http.WithPrometheus(registry))
	}
	if cfg.Gateway {
		conn, err := grpc.Dial(cfg.GrpcConfig.Address(), nil)
		if err != nil {
			log.Error("can't connect gateway to grpc server", sl.Err(err))
			os.Exit(1)
		}
		defer conn.Close()
		httpOpts = append(httpOpts, http.WithGrpcGateway(grpc.NewClient(conn)))
	}
	httpServer := http.New(httpOpts...)
	httpServer.Start()

	//Stop application
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	<-stop
	log.Info("stopping application")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	httpServer.Stop(shutdownCtx)
	server.Stop()
	cancel()
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Error("can't close kafka producer", sl.Err(err))
		}
	}
	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		panic("unknown enviroment")
	}

	return log
}
