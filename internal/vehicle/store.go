package vehicle

import "context"

// Store persists vehicles. Every owner-scoped operation filters by both the
// record ID and the owner; a record owned by someone else is indistinguishable
// from a missing one (storage.ErrNotFound).
type Store interface {
	Insert(ctx context.Context, v Vehicle) (Vehicle, error)
	ListByOwner(ctx context.Context, userID string) ([]Vehicle, error)
	FindByOwner(ctx context.Context, id, userID string) (Vehicle, error)
	Update(ctx context.Context, id, userID string, req UpdateRequest) error
	Delete(ctx context.Context, id, userID string) error
	CountByOwner(ctx context.Context, userID string) (int64, error)

	// ListAll feeds the public marketplace view, which is not owner-scoped.
	ListAll(ctx context.Context, limit int64) ([]Vehicle, error)
}
