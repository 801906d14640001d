package insurance

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

func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (Policy, error) {
	now := requestcontext.Now(ctx).UTC()
	p := Policy{
		UserID:         userID,
		VehicleID:      req.VehicleID,
		Provider:       req.Provider,
		PolicyNumber:   req.PolicyNumber,
		PolicyType:     req.PolicyType,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Premium:        req.Premium,
		Excess:         req.Excess,
		CoverageAmount: req.CoverageAmount,
		CreatedAt:      now,
	}
	created, err := s.store.Insert(ctx, p)
	if err != nil {
		return Policy{}, err
	}
	created.deriveStatus(now)
	return created, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Policy, error) {
	policies, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx).UTC()
	out := make([]Policy, 0, len(policies))
	for _, p := range policies {
		p.deriveStatus(now)
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Policy, error) {
	p, err := s.store.FindByOwner(ctx, id, userID)
	if err != nil {
		return Policy{}, notFoundOr(err, "policy not found")
	}
	p.deriveStatus(requestcontext.Now(ctx).UTC())
	return p, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req UpdateRequest) (Policy, error) {
	if err := s.store.Update(ctx, id, userID, req); err != nil {
		return Policy{}, notFoundOr(err, "policy not found")
	}
	return s.Get(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.Delete(ctx, id, userID); err != nil {
		return notFoundOr(err, "policy not found")
	}
	return nil
}

// CountActive reports how many of the owner's policies are active right now.
// The dashboard uses it.
func (s *Service) CountActive(ctx context.Context, userID string) (int64, error) {
	policies, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return 0, err
	}
	now := requestcontext.Now(ctx).UTC()
	var n int64
	for _, p := range policies {
		if status.FromEnd(now, p.EndDate) == status.Active {
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
