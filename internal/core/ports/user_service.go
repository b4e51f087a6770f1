package ports

import (
	"context"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

// RegisterInput carries a public signup request. The role is always
// forced to "user" by the service regardless of what the caller sent.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// UpdateUserInput carries a partial account update. Optional fields are
// pointers so "absent" and "set to zero value" stay distinguishable.
// Caller is the authenticated identity performing the update; non-admin
// callers have any Role field silently dropped.
type UpdateUserInput struct {
	ID       string
	Email    *string
	Username *string
	Password *string
	Role     *string
	Caller   domain.Identity
}

// UserService defines the account lifecycle use cases. All reads return
// records with the credential digest stripped.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
