package local

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/domain/errs"
)

var (
	sessionBucket = []byte("session")
	currentKey    = []byte("current")
)

// SessionStore keeps the signed-in identity between runs of the client.
type SessionStore struct {
	db *bbolt.DB
}

func Open(path string) (*SessionStore, error) {
	const op = "local.Open"

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &SessionStore{db: db}, nil
}

func (s *SessionStore) Save(session domain.Session) error {
	const op = "local.Save"

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(sessionBucket).Put(currentKey, data)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Load returns errs.ErrSessionNotFound when nobody is signed in.
func (s *SessionStore) Load() (domain.Session, error) {
	const op = "local.Load"

	var session domain.Session
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(sessionBucket).Get(currentKey)
		if data == nil {
			return errs.ErrSessionNotFound
		}
		return json.Unmarshal(data, &session)
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return session, nil
}

func (s *SessionStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete(currentKey)
	})
}

func (s *SessionStore) Close() error {
	return s.db.Close()
}
