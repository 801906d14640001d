package roadside

import "context"

// Store persists memberships with owner-scoped access.
type Store interface {
	Insert(ctx context.Context, m Membership) (Membership, error)
	ListByOwner(ctx context.Context, userID string) ([]Membership, error)
	FindByOwner(ctx context.Context, id, userID string) (Membership, error)
	Update(ctx context.Context, id, userID string, req UpdateRequest) error
	Delete(ctx context.Context, id, userID string) error
}
