package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/pkg/logger/sl"
	"github.com/alexandernizov/mogakco/internal/storage"
	"github.com/redis/go-redis/v9"
)

// Redis keeps documents as hashes keyed "<collection>:<id>". Every field
// value is stored JSON-encoded so lists survive the round trip.
type Redis struct {
	log *slog.Logger
	db  *redis.Client
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

func New(log *slog.Logger, db *redis.Client) *Redis {
	return &Redis{log: log, db: db}
}

func NewWithOptions(log *slog.Logger, opt RedisOptions) (*Redis, error) {
	db := redis.NewClient(&redis.Options{Addr: opt.Addr, Password: opt.Password, DB: opt.DB})

	_, err := db.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("can't ping Redis DB: %w", storage.ErrNoConnection)
	}
	return &Redis{log: log, db: db}, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.db.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.db.Close()
}

func documentKey(collection, id string) string {
	return collection + ":" + id
}

// SetDocument replaces the whole document.
func (r *Redis) SetDocument(ctx context.Context, doc domain.Document) error {
	const op = "redis.SetDocument"
	log := r.log.With(slog.String("op", op))

	values := make(map[string]any, len(doc.Fields))
	for field, value := range doc.Fields {
		encoded, err := json.Marshal(value)
		if err != nil {
			log.Error("can't encode field", slog.String("field", field), sl.Err(err))
			return storage.ErrInternal
		}
		values[field] = string(encoded)
	}

	key := documentKey(doc.Collection, doc.ID)
	_, err := r.db.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.HSet(ctx, key, values)
		}
		return nil
	})
	if err != nil {
		log.Error("can't write document", slog.String("key", key), sl.Err(err))
		return storage.ErrInternal
	}

	return nil
}

func (r *Redis) GetDocument(ctx context.Context, collection, id string) (*domain.Document, error) {
	const op = "redis.GetDocument"
	log := r.log.With(slog.String("op", op))

	key := documentKey(collection, id)
	values, err := r.db.HGetAll(ctx, key).Result()
	if err != nil {
		log.Error("can't read document", slog.String("key", key), sl.Err(err))
		return nil, storage.ErrInternal
	}
	if len(values) == 0 {
		return nil, storage.ErrDocumentMissing
	}

	doc := domain.Document{Collection: collection, ID: id, Fields: make(map[string]any, len(values))}
	for field, raw := range values {
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			log.Error("can't decode field", slog.String("key", key), slog.String("field", field), sl.Err(err))
			return nil, storage.ErrInternal
		}
		doc.Fields[field] = value
	}

	return &doc, nil
}
