package ports

import (
	"context"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

// AuthService authenticates credentials and issues identity tokens.
type AuthService interface {
	// Login verifies the password for the account registered under email
	// and returns a signed token plus the sanitized account record.
	// Unknown email yields domain.ErrUserNotFound, a wrong password
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
