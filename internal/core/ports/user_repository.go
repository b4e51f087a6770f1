package ports

import (
	"context"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

// UserPatch carries the fields of a partial account update. Nil fields
// are left untouched by the store.
type UserPatch struct {
	Email          *string
	Username       *string
	PasswordDigest *string
	Role           *string
}

// Empty reports whether the patch would change nothing.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.Username == nil && p.PasswordDigest == nil && p.Role == nil
}

// UserRepository defines persistence for account records. The store
// enforces email uniqueness through its unique index; violations
// surface as domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns the record including the credential digest;
	// it is the only read that does so.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
