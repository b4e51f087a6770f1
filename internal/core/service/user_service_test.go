package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
	"github.com/foodexpress/foodexpress-api/internal/core/ports"
	"github.com/foodexpress/foodexpress-api/internal/pkg/password"
)

// stubUserRepo is an in-memory UserRepository enforcing the email
// unique constraint, shared by the user and auth service tests.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("id-%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *patch.Email {
				return nil, domain.ErrEmailTaken
			}
		}
		u.Email = *patch.Email
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.PasswordDigest != nil {
		u.PasswordDigest = *patch.PasswordDigest
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestUserService_Register_ForcesUserRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "Alice@Example.com",
		Username: "alice",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %q", user.Role)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordDigest != "" {
		t.Fatalf("digest leaked in register response")
	}

	stored := repo.users[user.ID]
	if stored.PasswordDigest == "secret1" || stored.PasswordDigest == "" {
		t.Fatalf("password not digested before persisting")
	}
	if !password.Verify("secret1", stored.PasswordDigest) {
		t.Fatalf("stored digest does not match the password")
	}
}

func TestUserService_Register_CaseInsensitiveConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Username: "one", Password: "secret1"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "A@X.COM", Username: "two", Password: "secret2"}); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Get_StripsDigest(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Username: "abc", Password: "secret1"})

	user, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if user.PasswordDigest != "" {
		t.Fatalf("digest leaked from Get")
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for _, u := range users {
		if u.PasswordDigest != "" {
			t.Fatalf("digest leaked from List")
		}
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), testLogger())
	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_DropsRoleForNonAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Username: "abc", Password: "secret1"})

	role := domain.RoleAdmin
	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:     created.ID,
		Role:   &role,
		Caller: domain.Identity{SubjectID: created.ID, Role: domain.RoleUser},
	})
	if err != nil {
		t.Fatalf("role-only update by non-admin must not error, got %v", err)
	}
	if updated.Role != domain.RoleUser {
		t.Fatalf("role escalated by non-admin: %q", updated.Role)
	}
	if repo.users[created.ID].Role != domain.RoleUser {
		t.Fatalf("stored role changed by non-admin")
	}
}

func TestUserService_Update_AdminSetsRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Username: "abc", Password: "secret1"})

	role := domain.RoleAdmin
	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:     created.ID,
		Role:   &role,
		Caller: domain.Identity{SubjectID: "admin-1", Role: domain.RoleAdmin},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("admin role change not applied, got %q", updated.Role)
	}
}

func TestUserService_Update_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	first, _ := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Username: "abc", Password: "secret1"})
	_, _ = svc.Register(context.Background(), ports.RegisterInput{Email: "b@x.com", Username: "bcd", Password: "secret2"})

	email := "B@X.com"
	_, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:     first.ID,
		Email:  &email,
		Caller: domain.Identity{SubjectID: first.ID, Role: domain.RoleUser},
	})
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Update_OwnEmailUnchangedIsFine(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Username: "abc", Password: "secret1"})

	email := "A@X.com" // same address, different case
	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:     created.ID,
		Email:  &email,
		Caller: domain.Identity{SubjectID: created.ID, Role: domain.RoleUser},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Email != "a@x.com" {
		t.Fatalf("unexpected email: %q", updated.Email)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Username: "abc", Password: "oldpass"})

	newPass := "newpass"
	if _, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:       created.ID,
		Password: &newPass,
		Caller:   domain.Identity{SubjectID: created.ID, Role: domain.RoleUser},
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	stored := repo.users[created.ID]
	if stored.PasswordDigest == "newpass" {
		t.Fatalf("plaintext persisted")
	}
	if !password.Verify("newpass", stored.PasswordDigest) {
		t.Fatalf("new password does not verify")
	}
	if password.Verify("oldpass", stored.PasswordDigest) {
		t.Fatalf("old password still verifies")
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), testLogger())
	name := "zzz"
	_, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:       "missing",
		Username: &name,
		Caller:   domain.Identity{SubjectID: "missing", Role: domain.RoleUser},
	})
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger())

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Username: "abc", Password: "secret1"})

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("unexpected deleted record: %+v", deleted)
	}
	if deleted.PasswordDigest != "" {
		t.Fatalf("digest leaked from Delete")
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("record still resolvable after delete")
	}
}
