package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/foodexpress/foodexpress-api/internal/api/metrics"
	"github.com/foodexpress/foodexpress-api/internal/core/domain"
	"github.com/foodexpress/foodexpress-api/internal/core/ports"
	"github.com/foodexpress/foodexpress-api/internal/pkg/password"
)

// UserService implements the account lifecycle: public signup, reads
// with the digest stripped, patch-style updates, and deletion.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates an account from a public signup. The role is forced
// to "user" no matter what the caller supplied; email uniqueness is
// enforced by the store's unique index, not pre-checked here.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	digest, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:          normalizeEmail(input.Email),
		Username:       input.Username,
		PasswordDigest: digest,
		Role:           domain.RoleUser,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.AccountsCreatedTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Msg("account created")

	return created.Sanitized(), nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordDigest = ""
	}
	return users, nil
}

// Update applies a partial account update. A role change by a non-admin
// caller is dropped from the patch without an error; a new password is
// digested before it reaches the store; a changed email is conflict-
// checked against other accounts (the unique index remains the final
// arbiter under concurrency).
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	patch := ports.UserPatch{Username: input.Username}

	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email != existing.Email {
			if _, err := s.repo.FindByEmail(ctx, email); err == nil {
				return nil, domain.ErrEmailTaken
			} else if !errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
		}
		patch.Email = &email
	}

	if input.Role != nil {
		if input.Caller.IsAdmin() {
			patch.Role = input.Role
		} else {
			s.logger.Debug().Str("user_id", input.ID).Msg("role change dropped for non-admin caller")
		}
	}

	if input.Password != nil {
		digest, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordDigest = &digest
	}

	// A patch emptied by the role drop is a no-op, not an error: the
	// caller sent a syntactically valid update that they were simply
	// not allowed to apply.
	if patch.Empty() {
		return existing.Sanitized(), nil
	}

	updated, err := s.repo.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("account updated")
	return updated.Sanitized(), nil
}

// Delete removes the account and returns the removed record for
// confirmation, digest stripped.
func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Msg("account deleted")
	return deleted.Sanitized(), nil
}
