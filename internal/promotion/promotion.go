// Package promotion exposes the public promotions catalog. A promotion runs
// between a start and an end date, so its status has three points: Upcoming
// before the window, Active inside it (boundaries included) and Expired after.
package promotion

import (
	"context"
	"strings"
	"time"

	"motorvault/internal/status"
	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

type Promotion struct {
	ID          string    `bson:"-" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	DealerID    *string   `bson:"dealer_id,omitempty" json:"dealer_id,omitempty"`
	Image       *string   `bson:"image,omitempty" json:"image,omitempty"`
	StartDate   time.Time `bson:"start_date" json:"start_date"`
	EndDate     time.Time `bson:"end_date" json:"end_date"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`

	Status status.Status `bson:"-" json:"status"`
}

func (p *Promotion) deriveStatus(now time.Time) {
	p.Status = status.FromWindow(now, p.StartDate, p.EndDate)
}

// Store persists promotions. Insert exists for seeding and tests.
type Store interface {
	Insert(ctx context.Context, p Promotion) (Promotion, error)
	List(ctx context.Context) ([]Promotion, error)
	FindByID(ctx context.Context, id string) (Promotion, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns promotions with derived status. A non-empty statusFilter keeps
// only promotions whose derived status matches it (case-insensitive values
// "active", "upcoming", "expired"); an unknown filter matches nothing.
func (s *Service) List(ctx context.Context, statusFilter string) ([]Promotion, error) {
	promotions, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx).UTC()
	out := make([]Promotion, 0, len(promotions))
	for _, p := range promotions {
		p.deriveStatus(now)
		if statusFilter != "" && !strings.EqualFold(string(p.Status), statusFilter) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (Promotion, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return Promotion{}, dErrors.New(dErrors.CodeNotFound, "promotion not found")
		}
		return Promotion{}, err
	}
	p.deriveStatus(requestcontext.Now(ctx).UTC())
	return p, nil
}
