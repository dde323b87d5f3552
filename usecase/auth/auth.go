package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/pkg/password"
	"github.com/taskflow/backend/pkg/token"
	"github.com/taskflow/backend/repository"
)

type UseCase struct {
	users  repository.UserRepository
	tokens *token.Service
	logger *zap.Logger
}

func New(users repository.UserRepository, tokens *token.Service, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
}

// Register creates an account. The stored digest is never the plaintext; the
// email must not be in use. Role defaults to USER when omitted.
func (uc *UseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if _, err := uc.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, err
	}

	digest, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		Email:          input.Email,
		PasswordDigest: digest,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Role:           role,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password produce the same error so neither field is disclosed.
func (uc *UseCase) Login(ctx context.Context, email, plaintext string) (string, *domain.User, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Matches(user.PasswordDigest, plaintext) {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := uc.tokens.Issue(domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

// CurrentUser resolves the authenticated caller's account.
func (uc *UseCase) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}
