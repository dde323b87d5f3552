// Package user implements the admin-only account management surface.
package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/pkg/password"
	"github.com/taskflow/backend/repository"
)

type UseCase struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func New(users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		logger: logger,
	}
}

type CreateInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
}

type UpdateInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Role      *domain.Role
}

func (uc *UseCase) List(ctx context.Context) ([]domain.User, error) {
	return uc.users.List(ctx)
}

func (uc *UseCase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return uc.users.GetByID(ctx, id)
}

// Create adds an account with a globally unique email. Role defaults to USER.
func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*domain.User, error) {
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
	return user, nil
}

// Update patches an account. The password digest is recomputed only when a
// new password is supplied; a changed email must remain globally unique.
func (uc *UseCase) Update(ctx context.Context, id string, input UpdateInput) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		existing, err := uc.users.GetByEmail(ctx, *input.Email)
		if err == nil && existing.ID != id {
			return nil, domain.ErrEmailTaken
		}
		if err != nil && !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Password != nil {
		digest, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordDigest = digest
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the account. Owned tasks, categories and comments go with
// it through the storage-level cascades.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.users.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.users.Delete(ctx, id)
}
