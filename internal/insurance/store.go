package insurance

import "context"

// Store persists policies. Owner-scoped operations filter by both ID and
// owner; a foreign-owner hit is storage.ErrNotFound.
type Store interface {
	Insert(ctx context.Context, p Policy) (Policy, error)
	ListByOwner(ctx context.Context, userID string) ([]Policy, error)
	FindByOwner(ctx context.Context, id, userID string) (Policy, error)
	Update(ctx context.Context, id, userID string, req UpdateRequest) error
	Delete(ctx context.Context, id, userID string) error
}
