package insurance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"motorvault/internal/storage"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	policies map[string]Policy
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{policies: make(map[string]Policy)}
}

func (s *InMemoryStore) Insert(_ context.Context, p Policy) (Policy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	s.policies[p.ID] = p
	return p, nil
}

func (s *InMemoryStore) ListByOwner(_ context.Context, userID string) ([]Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Policy
	for _, p := range s.policies {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *InMemoryStore) FindByOwner(_ context.Context, id, userID string) (Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.policies[id]; ok && p.UserID == userID {
		return p, nil
	}
	return Policy{}, storage.ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, id, userID string, req UpdateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.policies[id]
	if !ok || p.UserID != userID {
		return storage.ErrNotFound
	}
	req.apply(&p)
	s.policies[id] = p
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.policies[id]; ok && p.UserID == userID {
		delete(s.policies, id)
		return nil
	}
	return storage.ErrNotFound
}
