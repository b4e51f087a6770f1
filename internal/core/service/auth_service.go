package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/foodexpress/foodexpress-api/internal/api/metrics"
	"github.com/foodexpress/foodexpress-api/internal/core/domain"
	"github.com/foodexpress/foodexpress-api/internal/core/ports"
	"github.com/foodexpress/foodexpress-api/internal/pkg/password"
	"github.com/foodexpress/foodexpress-api/internal/pkg/token"
)

// AuthService verifies credentials and issues identity tokens.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Service
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Service, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login looks up the account by email (the one read that includes the
// credential digest), verifies the password, and issues a signed token
// carrying the account id and role.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || plaintext == "" {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return "", nil, err
	}

	if !password.Verify(plaintext, user.PasswordDigest) {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		s.logger.Warn().Str("email", email).Msg("login rejected: wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(domain.Identity{SubjectID: user.ID, Role: user.Role})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")

	return signed, user.Sanitized(), nil
}

// normalizeEmail maps an email to its canonical form so that uniqueness
// and lookups are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
