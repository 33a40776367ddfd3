package ledger

import (
	"sync"

	"github.com/google/uuid"
)

// Store держит сессии планирования в памяти процесса.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	deps     Dependencies
	defaults Options
	max      int
}

// NewStore создает хранилище сессий; max <= 0 снимает ограничение.
func NewStore(deps Dependencies, defaults Options, max int) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		deps:     deps,
		defaults: defaults,
		max:      max,
	}
}

// Create открывает новую сессию. Пустой тип события берется из настроек по умолчанию.
func (s *Store) Create(eventType string, guestCount int) (*Session, error) {
	opts := s.defaults
	if eventType != "" {
		opts.EventType = eventType
	}
	if guestCount > 0 {
		opts.GuestCount = guestCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.sessions) >= s.max {
		return nil, ErrStoreFull
	}

	session := NewSession(uuid.New(), s.deps, opts)
	s.sessions[session.ID] = session
	return session, nil
}

func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	return session, ok
}

func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
