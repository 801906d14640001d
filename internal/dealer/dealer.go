// Package dealer exposes the public dealership catalog. The catalog is
// read-only over HTTP; records are loaded out of band.
package dealer

import (
	"context"
	"time"

	dErrors "motorvault/pkg/domain-errors"
)

type Dealer struct {
	ID        string    `bson:"-" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Address   string    `bson:"address" json:"address"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     *string   `bson:"email,omitempty" json:"email,omitempty"`
	Website   *string   `bson:"website,omitempty" json:"website,omitempty"`
	Brands    []string  `bson:"brands,omitempty" json:"brands,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Store persists dealers. Insert exists for seeding and tests; the HTTP
// surface only reads.
type Store interface {
	Insert(ctx context.Context, d Dealer) (Dealer, error)
	List(ctx context.Context) ([]Dealer, error)
	FindByID(ctx context.Context, id string) (Dealer, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]Dealer, error) {
	dealers, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if dealers == nil {
		dealers = []Dealer{}
	}
	return dealers, nil
}

func (s *Service) Get(ctx context.Context, id string) (Dealer, error) {
	d, err := s.store.FindByID(ctx, id)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return Dealer{}, dErrors.New(dErrors.CodeNotFound, "dealer not found")
		}
		return Dealer{}, err
	}
	return d, nil
}
