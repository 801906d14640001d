package roadside

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"motorvault/internal/storage"
)

type InMemoryStore struct {
	mu          sync.RWMutex
	memberships map[string]Membership
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{memberships: make(map[string]Membership)}
}

func (s *InMemoryStore) Insert(_ context.Context, m Membership) (Membership, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.NewString()
	s.memberships[m.ID] = m
	return m, nil
}

func (s *InMemoryStore) ListByOwner(_ context.Context, userID string) ([]Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Membership
	for _, m := range s.memberships {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *InMemoryStore) FindByOwner(_ context.Context, id, userID string) (Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.memberships[id]; ok && m.UserID == userID {
		return m, nil
	}
	return Membership{}, storage.ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, id, userID string, req UpdateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.memberships[id]
	if !ok || m.UserID != userID {
		return storage.ErrNotFound
	}
	req.apply(&m)
	s.memberships[id] = m
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.memberships[id]; ok && m.UserID == userID {
		delete(s.memberships, id)
		return nil
	}
	return storage.ErrNotFound
}
