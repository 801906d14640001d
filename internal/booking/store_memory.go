package booking

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"motorvault/internal/storage"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]Booking
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{bookings: make(map[string]Booking)}
}

func (s *InMemoryStore) Insert(_ context.Context, b Booking) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = uuid.NewString()
	s.bookings[b.ID] = b
	return b, nil
}

func (s *InMemoryStore) ListByOwner(_ context.Context, userID string) ([]Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *InMemoryStore) FindByOwner(_ context.Context, id, userID string) (Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.bookings[id]; ok && b.UserID == userID {
		return b, nil
	}
	return Booking{}, storage.ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, id, userID string, req UpdateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok || b.UserID != userID {
		return storage.ErrNotFound
	}
	req.apply(&b)
	s.bookings[id] = b
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bookings[id]; ok && b.UserID == userID {
		delete(s.bookings, id)
		return nil
	}
	return storage.ErrNotFound
}
