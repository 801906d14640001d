// Package provider exposes the public catalog of insurance, finance and
// roadside assistance providers, filterable by type.
package provider

import (
	"context"
	"time"
)

type Provider struct {
	ID           string    `bson:"-" json:"id"`
	Name         string    `bson:"name" json:"name"`
	ProviderType string    `bson:"provider_type" json:"provider_type"`
	Phone        *string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Website      *string   `bson:"website,omitempty" json:"website,omitempty"`
	Description  *string   `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Store persists providers. Insert exists for seeding and tests.
type Store interface {
	Insert(ctx context.Context, p Provider) (Provider, error)
	List(ctx context.Context, providerType string) ([]Provider, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns all providers, or only those of the given type when
// providerType is non-empty.
func (s *Service) List(ctx context.Context, providerType string) ([]Provider, error) {
	providers, err := s.store.List(ctx, providerType)
	if err != nil {
		return nil, err
	}
	if providers == nil {
		providers = []Provider{}
	}
	return providers, nil
}
