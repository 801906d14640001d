package promotion

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"motorvault/internal/storage"
)

type InMemoryStore struct {
	mu         sync.RWMutex
	promotions map[string]Promotion
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{promotions: make(map[string]Promotion)}
}

func (s *InMemoryStore) Insert(_ context.Context, p Promotion) (Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	s.promotions[p.ID] = p
	return p, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Promotion, 0, len(s.promotions))
	for _, p := range s.promotions {
		out = append(out, p)
	}
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.promotions[id]; ok {
		return p, nil
	}
	return Promotion{}, storage.ErrNotFound
}
