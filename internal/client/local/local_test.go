package local

import (
	"path/filepath"
	"testing"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) (*SessionStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.db")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestSessionStore_Empty(t *testing.T) {
	s, _ := openStore(t)
	defer s.Close()

	_, err := s.Load()
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)
}

func TestSessionStore_SurvivesReopen(t *testing.T) {
	s, path := openStore(t)
	want := domain.Session{UserID: "u1", Email: "a@x.com", Token: "tok"}
	require.NoError(t, s.Save(want))
	require.NoError(t, s.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSessionStore_Clear(t *testing.T) {
	s, _ := openStore(t)
	defer s.Close()

	require.NoError(t, s.Save(domain.Session{UserID: "u1"}))
	require.NoError(t, s.Clear())

	_, err := s.Load()
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)
}
