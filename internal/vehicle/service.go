package vehicle

import (
	"context"

	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

// Service owns the vehicle business rules: ownership stamping on create and
// owner-scoped access everywhere else.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (Vehicle, error) {
	v := Vehicle{
		UserID:        userID,
		Rego:          req.Rego,
		VIN:           req.VIN,
		Make:          req.Make,
		Model:         req.Model,
		Year:          req.Year,
		BodyType:      req.BodyType,
		Color:         req.Color,
		Odometer:      req.Odometer,
		Image:         req.Image,
		PurchaseDate:  req.PurchaseDate,
		PurchasePrice: req.PurchasePrice,
		DealerID:      req.DealerID,
		CreatedAt:     requestcontext.Now(ctx).UTC(),
	}
	created, err := s.store.Insert(ctx, v)
	if err != nil {
		return Vehicle{}, err
	}
	return created, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Vehicle, error) {
	vehicles, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if vehicles == nil {
		vehicles = []Vehicle{}
	}
	return vehicles, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Vehicle, error) {
	v, err := s.store.FindByOwner(ctx, id, userID)
	if err != nil {
		return Vehicle{}, notFoundOr(err, "vehicle not found")
	}
	return v, nil
}

// Update applies the non-nil fields and returns the record as stored, fetched
// through the same owner filter as the write.
func (s *Service) Update(ctx context.Context, userID, id string, req UpdateRequest) (Vehicle, error) {
	if err := s.store.Update(ctx, id, userID, req); err != nil {
		return Vehicle{}, notFoundOr(err, "vehicle not found")
	}
	return s.Get(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.Delete(ctx, id, userID); err != nil {
		return notFoundOr(err, "vehicle not found")
	}
	return nil
}

func (s *Service) Count(ctx context.Context, userID string) (int64, error) {
	return s.store.CountByOwner(ctx, userID)
}

func notFoundOr(err error, message string) error {
	if dErrors.Is(err, dErrors.CodeNotFound) {
		return dErrors.New(dErrors.CodeNotFound, message)
	}
	return err
}
