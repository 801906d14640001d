package finance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"motorvault/internal/storage"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	products map[string]Product
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{products: make(map[string]Product)}
}

func (s *InMemoryStore) Insert(_ context.Context, p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	s.products[p.ID] = p
	return p, nil
}

func (s *InMemoryStore) ListByOwner(_ context.Context, userID string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Product
	for _, p := range s.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *InMemoryStore) FindByOwner(_ context.Context, id, userID string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.products[id]; ok && p.UserID == userID {
		return p, nil
	}
	return Product{}, storage.ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, id, userID string, req UpdateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok || p.UserID != userID {
		return storage.ErrNotFound
	}
	req.apply(&p)
	s.products[id] = p
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok && p.UserID == userID {
		delete(s.products, id)
		return nil
	}
	return storage.ErrNotFound
}
