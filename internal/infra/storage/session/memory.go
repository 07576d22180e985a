package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/OtoCare-BookingService/internal/domain"
)

// sweepInterval как часто Save удаляет истёкшие сессии
const sweepInterval = time.Minute

// MemoryStore хранилище сессий в памяти процесса для одного инстанса
type MemoryStore struct {
	mu        sync.Mutex
	sessions  map[string]memoryEntry
	now       func() time.Time
	lastSweep time.Time
}

type memoryEntry struct {
	session   domain.Session
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, sess *domain.Session, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("%w: non-positive ttl %s", ErrStore, ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) > sweepInterval {
		for token, entry := range s.sessions {
			if !now.Before(entry.expiresAt) {
				delete(s.sessions, token)
			}
		}
		s.lastSweep = now
	}

	s.sessions[sess.Token] = memoryEntry{
		session:   *sess,
		expiresAt: now.Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.sessions, token)
		return nil, ErrSessionNotFound
	}

	sess := entry.session
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
