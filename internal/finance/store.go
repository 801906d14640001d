package finance

import "context"

// Store persists finance products with owner-scoped access.
type Store interface {
	Insert(ctx context.Context, p Product) (Product, error)
	ListByOwner(ctx context.Context, userID string) ([]Product, error)
	FindByOwner(ctx context.Context, id, userID string) (Product, error)
	Update(ctx context.Context, id, userID string, req UpdateRequest) error
	Delete(ctx context.Context, id, userID string) error
}
