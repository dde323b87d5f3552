package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/pkg/password"
	"github.com/taskflow/backend/usecase/user"
)

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			match := u
			return &match, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, plaintext string, role domain.Role) *domain.User {
	t.Helper()
	digest, err := password.Hash(plaintext)
	if err != nil {
		t.Fatalf("hashing seed password: %v", err)
	}
	u := domain.User{
		Email:          email,
		PasswordDigest: digest,
		FirstName:      "Seed",
		LastName:       "User",
		Role:           role,
	}
	if err := repo.Create(context.Background(), &u); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return &u
}

func TestCreate_DefaultRole(t *testing.T) {
	t.Parallel()

	uc := user.New(newFakeUserRepo(), nil)

	created, err := uc.Create(context.Background(), user.CreateInput{
		Email:     "new@example.com",
		Password:  "password123",
		FirstName: "New",
		LastName:  "User",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Role != domain.RoleUser {
		t.Fatalf("expected default role USER, got %s", created.Role)
	}
	if !password.Matches(created.PasswordDigest, "password123") {
		t.Fatal("stored digest does not verify against the plaintext")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(t, repo, "taken@example.com", "password123", domain.RoleUser)
	uc := user.New(repo, nil)

	_, err := uc.Create(context.Background(), user.CreateInput{
		Email:    "taken@example.com",
		Password: "password123",
	})
	if !domain.IsDomainError(err, domain.ErrCodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUpdate_RehashOnlyWhenPasswordSupplied(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "kim@example.com", "original-pass", domain.RoleUser)
	uc := user.New(repo, nil)

	first := "Kim"
	updated, err := uc.Update(context.Background(), seeded.ID, user.UpdateInput{FirstName: &first})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PasswordDigest != seeded.PasswordDigest {
		t.Fatal("the digest must not change when no password is supplied")
	}

	newPass := "rotated-pass"
	updated, err = uc.Update(context.Background(), seeded.ID, user.UpdateInput{Password: &newPass})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PasswordDigest == seeded.PasswordDigest {
		t.Fatal("the digest must change when a password is supplied")
	}
	if !password.Matches(updated.PasswordDigest, "rotated-pass") {
		t.Fatal("the new digest does not verify against the new plaintext")
	}
}

func TestUpdate_EmailConflictExcludesSelf(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "self@example.com", "password123", domain.RoleUser)
	seedUser(t, repo, "other@example.com", "password123", domain.RoleUser)
	uc := user.New(repo, nil)

	// Re-submitting the current email is not a conflict.
	same := "self@example.com"
	if _, err := uc.Update(context.Background(), seeded.ID, user.UpdateInput{Email: &same}); err != nil {
		t.Fatalf("re-submitting own email must succeed, got %v", err)
	}

	taken := "other@example.com"
	_, err := uc.Update(context.Background(), seeded.ID, user.UpdateInput{Email: &taken})
	if !domain.IsDomainError(err, domain.ErrCodeConflict) {
		t.Fatalf("expected conflict for another account's email, got %v", err)
	}
}

func TestUpdate_Missing(t *testing.T) {
	t.Parallel()

	uc := user.New(newFakeUserRepo(), nil)

	first := "Ghost"
	_, err := uc.Update(context.Background(), uuid.NewString(), user.UpdateInput{FirstName: &first})
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDelete_Missing(t *testing.T) {
	t.Parallel()

	uc := user.New(newFakeUserRepo(), nil)

	err := uc.Delete(context.Background(), uuid.NewString())
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
