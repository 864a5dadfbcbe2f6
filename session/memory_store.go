package session

import (
	"context"
	"sync"
	"time"

	"clinic-triage-backend/models"
)

type memoryEntry struct {
	session   *models.SessionContext
	expiresAt time.Time
}

// MemoryStore keeps sessions in a process-local map guarded by a mutex.
// Expired entries are evicted lazily on access. Suitable for single-node
// deployments and tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memoryEntry),
		ttl:      ttl,
	}
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) (*models.SessionContext, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		fresh := models.NewSessionContext()
		m.sessions[sessionID] = &memoryEntry{
			session:   fresh,
			expiresAt: time.Now().Add(m.ttl),
		}
		return fresh, nil
	}

	entry.expiresAt = time.Now().Add(m.ttl)
	return entry.session, nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, session *models.SessionContext) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sessionID] = &memoryEntry{
		session:   session,
		expiresAt: time.Now().Add(m.ttl),
	}
	m.evictExpired()
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

func (m *MemoryStore) Ping(context.Context) error {
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// Len reports how many sessions are currently held, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// evictExpired drops stale entries. Caller must hold the lock.
func (m *MemoryStore) evictExpired() {
	now := time.Now()
	for id, entry := range m.sessions {
		if now.After(entry.expiresAt) {
			delete(m.sessions, id)
		}
	}
}
