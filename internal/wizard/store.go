package wizard

import (
	"sync"
	"time"

	wizarderrors "transferbook/internal/wizard/errors"
	"transferbook/pkg/logger"
)

type SessionStore interface {
	Put(s *Session)
	Get(id string) (*Session, error)
	Delete(id string) error
	Len() int
	Stop() // Stop cleanup goroutines and release resources
}

// InMemorySessionStore hands out independent sessions by id and forgets them
// after ttl of inactivity. Sessions are never shared between ids.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	log      *logger.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewInMemorySessionStore(ttl, cleanupInterval time.Duration, log *logger.Logger) *InMemorySessionStore {
	store := &InMemorySessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		log:      log,
		stopCh:   make(chan struct{}),
	}

	go store.cleanup(cleanupInterval)

	return store
}

func (s *InMemorySessionStore) Put(session *Session) {
	id := session.ID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = session
}

func (s *InMemorySessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	session, exists := s.sessions[id]
	s.mu.RUnlock()

	if !exists {
		return nil, wizarderrors.ErrNotFound
	}

	if s.expired(session) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, wizarderrors.ErrNotFound
	}

	return session, nil
}

func (s *InMemorySessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[id]; !exists {
		return wizarderrors.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *InMemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *InMemorySessionStore) expired(session *Session) bool {
	// A pending submission keeps the session alive regardless of idle time.
	if session.Submitting() {
		return false
	}
	return time.Since(session.TouchedAt()) > s.ttl
}

func (s *InMemorySessionStore) evictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *InMemorySessionStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if evicted := s.evictExpired(); evicted > 0 {
				s.log.Info("Expired booking sessions evicted", "count", evicted)
			}
		case <-s.stopCh:
			return
		}
	}
}

func (s *InMemorySessionStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}
