package marketplace

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"motorvault/internal/storage"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	listings map[string]Listing
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{listings: make(map[string]Listing)}
}

func (s *InMemoryStore) Insert(_ context.Context, l Listing) (Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.ID = uuid.NewString()
	s.listings[l.ID] = l
	return l, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Listing, 0, len(s.listings))
	for _, l := range s.listings {
		out = append(out, l)
	}
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.listings[id]; ok {
		return l, nil
	}
	return Listing{}, storage.ErrNotFound
}
