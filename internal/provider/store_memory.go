package provider

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemoryStore struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{providers: make(map[string]Provider)}
}

func (s *InMemoryStore) Insert(_ context.Context, p Provider) (Provider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	s.providers[p.ID] = p
	return p, nil
}

func (s *InMemoryStore) List(_ context.Context, providerType string) ([]Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Provider
	for _, p := range s.providers {
		if providerType == "" || p.ProviderType == providerType {
			out = append(out, p)
		}
	}
	return out, nil
}
