package vehicle

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"motorvault/internal/storage"
)

// InMemoryStore backs unit tests and the no-Mongo dev mode.
type InMemoryStore struct {
	mu       sync.RWMutex
	vehicles map[string]Vehicle
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{vehicles: make(map[string]Vehicle)}
}

func (s *InMemoryStore) Insert(_ context.Context, v Vehicle) (Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = uuid.NewString()
	s.vehicles[v.ID] = v
	return v, nil
}

func (s *InMemoryStore) ListByOwner(_ context.Context, userID string) ([]Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Vehicle
	for _, v := range s.vehicles {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *InMemoryStore) FindByOwner(_ context.Context, id, userID string) (Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.vehicles[id]; ok && v.UserID == userID {
		return v, nil
	}
	return Vehicle{}, storage.ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, id, userID string, req UpdateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vehicles[id]
	if !ok || v.UserID != userID {
		return storage.ErrNotFound
	}
	req.apply(&v)
	s.vehicles[id] = v
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.vehicles[id]; ok && v.UserID == userID {
		delete(s.vehicles, id)
		return nil
	}
	return storage.ErrNotFound
}

func (s *InMemoryStore) CountByOwner(_ context.Context, userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, v := range s.vehicles {
		if v.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *InMemoryStore) ListAll(_ context.Context, limit int64) ([]Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Vehicle
	for _, v := range s.vehicles {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, v)
	}
	return out, nil
}
