package roadside

import (
	"context"

	"motorvault/internal/status"
	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (Membership, error) {
	now := requestcontext.Now(ctx).UTC()
	m := Membership{
		UserID:           userID,
		VehicleID:        req.VehicleID,
		Provider:         req.Provider,
		MembershipNumber: req.MembershipNumber,
		PlanType:         req.PlanType,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Price:            req.Price,
		CreatedAt:        now,
	}
	created, err := s.store.Insert(ctx, m)
	if err != nil {
		return Membership{}, err
	}
	created.deriveStatus(now)
	return created, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Membership, error) {
	memberships, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx).UTC()
	out := make([]Membership, 0, len(memberships))
	for _, m := range memberships {
		m.deriveStatus(now)
		out = append(out, m)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Membership, error) {
	m, err := s.store.FindByOwner(ctx, id, userID)
	if err != nil {
		return Membership{}, notFoundOr(err, "membership not found")
	}
	m.deriveStatus(requestcontext.Now(ctx).UTC())
	return m, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req UpdateRequest) (Membership, error) {
	if err := s.store.Update(ctx, id, userID, req); err != nil {
		return Membership{}, notFoundOr(err, "membership not found")
	}
	return s.Get(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.Delete(ctx, id, userID); err != nil {
		return notFoundOr(err, "membership not found")
	}
	return nil
}

// CountActive reports the owner's memberships still inside their term.
func (s *Service) CountActive(ctx context.Context, userID string) (int64, error) {
	memberships, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return 0, err
	}
	now := requestcontext.Now(ctx).UTC()
	var n int64
	for _, m := range memberships {
		if status.FromEnd(now, m.EndDate) == status.Active {
			n++
		}
	}
	return n, nil
}

func notFoundOr(err error, message string) error {
	if dErrors.Is(err, dErrors.CodeNotFound) {
		return dErrors.New(dErrors.CodeNotFound, message)
	}
	return err
}
