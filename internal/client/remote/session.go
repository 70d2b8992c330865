package remote

import (
	"context"
	"sync"
)

// Session carries the access token issued at sign in. It is installed as
// per-RPC credentials on the backend connection.
type Session struct {
	mu     sync.RWMutex
	userID string
	token  string
}

func NewSession(userID, token string) *Session {
	return &Session{userID: userID, token: token}
}

func (s *Session) Set(userID, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID, s.token = userID, token
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) GetRequestMetadata(_ context.Context, _ ...string) (map[string]string, error) {
	token := s.Token()
	if token == "" {
		return nil, nil
	}
	return map[string]string{"authorization": "Bearer " + token}, nil
}

func (s *Session) RequireTransportSecurity() bool {
	return false
}
