package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// TTL is how long an issued token stays valid, measured from creation.
// Validity is never extended by use.
const TTL = 12 * time.Hour

const tokenBytes = 24

// Service encapsulates admin session state management.
type Service struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

// NewService bootstraps the in-memory session service.
func NewService() *Service {
	return &Service{
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Create issues a fresh opaque token and records its creation time.
func (s *Service) Create() string {
	buf := make([]byte, tokenBytes)
	// rand.Read never fails on supported platforms since go1.24.
	_, _ = rand.Read(buf)
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.sessions[token] = s.now()
	s.mu.Unlock()

	return token
}

// Validate reports whether the token identifies a live session. Expired
// entries are evicted on the access that discovers them; there is no
// background sweep.
func (s *Service) Validate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt, ok := s.sessions[token]
	if !ok {
		return false
	}
	if s.now().Sub(createdAt) > TTL {
		delete(s.sessions, token)
		return false
	}
	return true
}
