package store

import (
	"context"
	"sync"
	"time"

	"comment-service/model"
)

// Memory is the default single-process backend.
type Memory struct {
	mu       sync.Mutex
	sessions map[string]model.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		sessions: make(map[string]model.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *Memory) Save(ctx context.Context, s model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictLocked()
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = m.now().Add(m.ttl)
	}
	if !m.now().Before(s.ExpiresAt) {
		observe("save", "memory", ErrExpired)
		return ErrExpired
	}
	m.sessions[s.ID] = s
	observe("save", "memory", nil)
	return nil
}

func (m *Memory) Get(ctx context.Context, id string) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok || !m.now().Before(s.ExpiresAt) {
		delete(m.sessions, id)
		observe("get", "memory", ErrNotFound)
		return model.Session{}, ErrNotFound
	}
	observe("get", "memory", nil)
	return s, nil
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Memory) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = make(map[string]model.Session)
	return nil
}

// evictLocked drops expired sessions; called on every save so the map stays bounded
// by the number of sessions alive within one TTL.
func (m *Memory) evictLocked() {
	now := m.now()
	for id, s := range m.sessions {
		if !now.Before(s.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
}
