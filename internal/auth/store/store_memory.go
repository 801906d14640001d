package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"motorvault/internal/auth/models"
	"motorvault/internal/storage"
)

// InMemoryUserStore backs unit tests and the no-Mongo dev mode. It favors
// clarity over performance and mirrors the Mongo store's uniqueness
// behavior: email and member_id collisions fail the insert atomically.
type InMemoryUserStore struct {
	mu      sync.RWMutex
	users   map[string]models.User
	byEmail map[string]string
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (s *InMemoryUserStore) Insert(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return models.User{}, storage.ErrDuplicate
	}
	for _, existing := range s.users {
		if existing.MemberID == user.MemberID {
			return models.User{}, storage.ErrDuplicate
		}
	}

	user.ID = uuid.NewString()
	s.users[user.ID] = user
	s.byEmail[user.Email] = user.ID
	return user, nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return models.User{}, storage.ErrNotFound
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.byEmail[email]; ok {
		return s.users[id], nil
	}
	return models.User{}, storage.ErrNotFound
}

func (s *InMemoryUserStore) Update(_ context.Context, id string, patch models.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}
	s.users[id] = user
	return nil
}
