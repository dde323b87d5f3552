package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/pkg/password"
	"github.com/taskflow/backend/pkg/token"
	"github.com/taskflow/backend/usecase/auth"
)

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newUseCase() (*fakeUserRepo, *token.Service, *auth.UseCase) {
	repo := newFakeUserRepo()
	tokens := token.New("test-secret", "taskflow-test", time.Hour)
	return repo, tokens, auth.New(repo, tokens, nil)
}

func TestRegister_DigestIsNotPlaintext(t *testing.T) {
	t.Parallel()

	repo, _, uc := newUseCase()

	user, err := uc.Register(context.Background(), auth.RegisterInput{
		Email:     "alice@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored := repo.users[user.ID]
	if stored.PasswordDigest == "hunter2hunter2" {
		t.Fatal("stored digest equals the plaintext password")
	}
	if !password.Matches(stored.PasswordDigest, "hunter2hunter2") {
		t.Fatal("stored digest does not verify against the plaintext")
	}
	if stored.Role != domain.RoleUser {
		t.Fatalf("expected default role USER, got %s", stored.Role)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	_, _, uc := newUseCase()

	input := auth.RegisterInput{
		Email:     "bob@example.com",
		Password:  "password123",
		FirstName: "Bob",
		LastName:  "Jones",
	}
	if _, err := uc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	_, err := uc.Register(context.Background(), input)
	if !domain.IsDomainError(err, domain.ErrCodeConflict) {
		t.Fatalf("expected a conflict error, got %v", err)
	}
}

func TestLogin_NoCredentialDisclosure(t *testing.T) {
	t.Parallel()

	_, _, uc := newUseCase()

	if _, err := uc.Register(context.Background(), auth.RegisterInput{
		Email:     "carol@example.com",
		Password:  "password123",
		FirstName: "Carol",
		LastName:  "King",
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, _, wrongPassword := uc.Login(context.Background(), "carol@example.com", "nope")
	_, _, unknownEmail := uc.Login(context.Background(), "nobody@example.com", "password123")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatal("error messages must not disclose which field was wrong")
	}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	t.Parallel()

	_, tokens, uc := newUseCase()

	registered, err := uc.Register(context.Background(), auth.RegisterInput{
		Email:     "dave@example.com",
		Password:  "password123",
		FirstName: "Dave",
		LastName:  "Lee",
		Role:      domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	signed, user, err := uc.Login(context.Background(), "dave@example.com", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %s, got %s", registered.ID, user.ID)
	}

	identity, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if identity.UserID != registered.ID || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", identity)
	}
}

func TestCurrentUser_Missing(t *testing.T) {
	t.Parallel()

	_, _, uc := newUseCase()

	_, err := uc.CurrentUser(context.Background(), "missing-id")
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
