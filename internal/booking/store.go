package booking

import "context"

// Store persists bookings with owner-scoped access.
type Store interface {
	Insert(ctx context.Context, b Booking) (Booking, error)
	ListByOwner(ctx context.Context, userID string) ([]Booking, error)
	FindByOwner(ctx context.Context, id, userID string) (Booking, error)
	Update(ctx context.Context, id, userID string, req UpdateRequest) error
	Delete(ctx context.Context, id, userID string) error
}
