package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/store-dashboard/internal/dashboard/app/session"
	pkgtime "github.com/klwxsrx/store-dashboard/pkg/time"
)

type (
	// InMemoryStore loses every session on restart. Expired entries are
	// invisible to Load and are dropped by Purge.
	InMemoryStore struct {
		clock pkgtime.Clock
		ttl   time.Duration

		mutex    sync.Mutex
		sessions map[session.Token]inMemorySession
	}

	inMemorySession struct {
		credential session.Credential
		expiresAt  time.Time
	}
)

func NewInMemoryStore(clock pkgtime.Clock, ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{
		clock:    clock,
		ttl:      ttl,
		sessions: make(map[session.Token]inMemorySession),
	}
}

func (s *InMemoryStore) Save(ctx context.Context, c session.Credential) (session.Token, error) {
	token := session.Token(uuid.New().String())

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.sessions[token] = inMemorySession{
		credential: c,
		expiresAt:  s.clock.Now(ctx).Add(s.ttl),
	}
	return token, nil
}

func (s *InMemoryStore) Load(ctx context.Context, token session.Token) (session.Credential, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored, ok := s.sessions[token]
	if !ok || s.expired(ctx, stored) {
		return session.Credential{}, session.ErrSessionNotFound
	}

	return stored.credential, nil
}

func (s *InMemoryStore) Delete(_ context.Context, token session.Token) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *InMemoryStore) Purge(ctx context.Context) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var purged int
	for token, stored := range s.sessions {
		if s.expired(ctx, stored) {
			delete(s.sessions, token)
			purged++
		}
	}

	return purged
}

func (s *InMemoryStore) expired(ctx context.Context, stored inMemorySession) bool {
	return s.ttl > 0 && !s.clock.Now(ctx).Before(stored.expiresAt)
}
