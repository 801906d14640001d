package dealer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"motorvault/internal/storage"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	dealers map[string]Dealer
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{dealers: make(map[string]Dealer)}
}

func (s *InMemoryStore) Insert(_ context.Context, d Dealer) (Dealer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = uuid.NewString()
	s.dealers[d.ID] = d
	return d, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]Dealer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Dealer, 0, len(s.dealers))
	for _, d := range s.dealers {
		out = append(out, d)
	}
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (Dealer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d, ok := s.dealers[id]; ok {
		return d, nil
	}
	return Dealer{}, storage.ErrNotFound
}
