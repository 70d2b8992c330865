package redis_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/storage"
	sredis "github.com/alexandernizov/mogakco/internal/storage/redis"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requires Redis on localhost:6379, skipped otherwise
const testRedisAddr = "localhost:6379"

// setupTestStore returns a store and the raw client behind it.
func setupTestStore(t *testing.T) (*sredis.Redis, *redis.Client) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := sredis.New(log, client)
	t.Cleanup(func() { store.Close() })
	return store, client
}

func TestSetGetDocument(t *testing.T) {
	store, client := setupTestStore(t)
	ctx := context.Background()

	id := uuid.NewString()
	doc := domain.Document{
		Collection: "User",
		ID:         id,
		Fields: map[string]any{
			"id":        id,
			"name":      "kim",
			"languages": []any{"swift", "go"},
		},
	}
	t.Cleanup(func() { client.Del(ctx, "User:"+id) })

	require.NoError(t, store.SetDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "User", id)
	require.NoError(t, err)
	assert.Equal(t, doc.Fields, got.Fields)

	doc.Fields = map[string]any{"id": id}
	require.NoError(t, store.SetDocument(ctx, doc))

	got, err = store.GetDocument(ctx, "User", id)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": id}, got.Fields)
}

func TestGetDocument_Missing(t *testing.T) {
	store, _ := setupTestStore(t)

	got, err := store.GetDocument(context.Background(), "User", uuid.NewString())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, storage.ErrDocumentMissing)
}
