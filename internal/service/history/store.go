package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pi2026/clubsite/backend/internal/model/chat"
)

// MaxPairs is how many user/assistant exchanges a token's transcript keeps.
const MaxPairs = 10

// Store encapsulates per-token conversation transcripts. Transcripts are
// keyed by session token but live for the process lifetime; they are not
// cleaned up when the token itself expires.
type Store struct {
	mu    sync.RWMutex
	turns map[string][]chat.Turn
}

// NewStore bootstraps the in-memory history store.
func NewStore() *Store {
	return &Store{turns: make(map[string][]chat.Turn)}
}

// Turns returns a copy of the stored transcript, empty when none exists.
func (s *Store) Turns(token string) []chat.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.turns[token]
	copied := make([]chat.Turn, len(stored))
	copy(copied, stored)
	return copied
}

// AppendExchange appends one user turn and one assistant turn, then trims
// the transcript to the most recent MaxPairs exchanges, oldest out first.
func (s *Store) AppendExchange(token, userContent, answerContent string) {
	now := time.Now().UTC()
	pair := []chat.Turn{
		{ID: uuid.NewString(), Role: chat.RoleUser, Content: userContent, CreatedAt: now},
		{ID: uuid.NewString(), Role: chat.RoleAssistant, Content: answerContent, CreatedAt: now},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.turns[token], pair...)
	if max := 2 * MaxPairs; len(turns) > max {
		turns = turns[len(turns)-max:]
	}
	s.turns[token] = turns
}
