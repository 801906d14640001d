package booking

import (
	"context"

	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create stamps the owner and starts every booking in Pending regardless of
// what the request carried.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (Booking, error) {
	b := Booking{
		UserID:      userID,
		VehicleID:   req.VehicleID,
		DealerID:    req.DealerID,
		ServiceType: req.ServiceType,
		BookingDate: req.BookingDate,
		Notes:       req.Notes,
		Status:      StatusPending,
		CreatedAt:   requestcontext.Now(ctx).UTC(),
	}
	return s.store.Insert(ctx, b)
}

func (s *Service) List(ctx context.Context, userID string) ([]Booking, error) {
	bookings, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []Booking{}
	}
	return bookings, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Booking, error) {
	b, err := s.store.FindByOwner(ctx, id, userID)
	if err != nil {
		return Booking{}, notFoundOr(err, "booking not found")
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req UpdateRequest) (Booking, error) {
	if req.Status != nil && !ValidStatus(*req.Status) {
		return Booking{}, dErrors.New(dErrors.CodeValidation, "unknown booking status")
	}
	if err := s.store.Update(ctx, id, userID, req); err != nil {
		return Booking{}, notFoundOr(err, "booking not found")
	}
	return s.Get(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.Delete(ctx, id, userID); err != nil {
		return notFoundOr(err, "booking not found")
	}
	return nil
}

// CountPending reports the owner's bookings still waiting on confirmation.
func (s *Service) CountPending(ctx context.Context, userID string) (int64, error) {
	bookings, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, b := range bookings {
		if b.Status == StatusPending {
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
