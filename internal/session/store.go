package session

import "sync"

// Store maps Slack user IDs to sessions. Errors are part of the contract
// so a persistent implementation can be dropped in later; MemoryStore
// never returns one.
type Store interface {
	Save(userID string, s *Session) error
	// Get returns (nil, nil) when no session exists for the user.
	Get(userID string) (*Session, error)
	Delete(userID string) error
	Count() (int, error)
}

// MemoryStore keeps sessions in a process-local map. A Save racing a
// Delete for the same user resolves last-write-wins; slash commands are
// human-paced, so no per-user serialization is attempted.
type MemoryStore struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
	}
}

func (m *MemoryStore) Save(userID string, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s
	return nil
}

func (m *MemoryStore) Get(userID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, exists := m.sessions[userID]
	if !exists {
		return nil, nil
	}
	return session, nil
}

func (m *MemoryStore) Delete(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	return nil
}

func (m *MemoryStore) Count() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions), nil
}
