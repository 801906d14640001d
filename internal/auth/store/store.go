package store

import (
	"context"

	"motorvault/internal/auth/models"
)

// UserStore is interface-driven to keep the service testable and to allow
// swapping in-memory and Mongo persistence without rewiring business code.
// Implementations assign the record ID on insert and must enforce email and
// member_id uniqueness atomically, returning storage.ErrDuplicate on
// collision. The existence check the service performs first is a courtesy;
// the index is the real guarantee under concurrent registration.
type UserStore interface {
	Insert(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) error
}
