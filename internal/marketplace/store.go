package marketplace

import "context"

// Store persists listings. List and FindByID are not owner-scoped because the
// marketplace is a public surface.
type Store interface {
	Insert(ctx context.Context, l Listing) (Listing, error)
	List(ctx context.Context) ([]Listing, error)
	FindByID(ctx context.Context, id string) (Listing, error)
}
