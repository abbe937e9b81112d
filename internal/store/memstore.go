package store

import (
	"sync"

	"skill-reversi/internal/session"
)

// MemoryStore keeps live sessions keyed by code. Mutation of a session's
// game state happens under the session's own lock; this mutex only guards
// the map.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: map[string]*session.Session{},
	}
}

func (m *MemoryStore) Get(code string) (*session.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[code]
	return s, ok
}

func (m *MemoryStore) Save(s *session.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Code] = s
}
