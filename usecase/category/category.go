package category

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/repository"
)

type UseCase struct {
	categories repository.CategoryRepository
	logger     *zap.Logger
}

func New(categories repository.CategoryRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		categories: categories,
		logger:     logger,
	}
}

type CreateInput struct {
	Name        string
	Description string
}

type UpdateInput struct {
	Name        *string
	Description *string
}

func (uc *UseCase) List(ctx context.Context, ownerID string) ([]domain.Category, error) {
	return uc.categories.List(ctx, ownerID)
}

func (uc *UseCase) GetByID(ctx context.Context, id, ownerID string) (*domain.Category, error) {
	return uc.categories.GetOwned(ctx, id, ownerID)
}

// Create persists a category. The name must be unique among the owner's
// categories only; two users may each have a category of the same name.
func (uc *UseCase) Create(ctx context.Context, ownerID string, input CreateInput) (*domain.Category, error) {
	if _, err := uc.categories.FindByName(ctx, ownerID, input.Name, ""); err == nil {
		return nil, domain.ErrCategoryNameTaken
	} else if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, err
	}

	category := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		UserID:      ownerID,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update patches an owned category. A renamed category is probed against the
// owner's other categories, excluding the record itself.
func (uc *UseCase) Update(ctx context.Context, id, ownerID string, input UpdateInput) (*domain.Category, error) {
	category, err := uc.categories.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if _, err := uc.categories.FindByName(ctx, ownerID, *input.Name, id); err == nil {
			return nil, domain.ErrCategoryNameTaken
		} else if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, err
		}
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}

	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes an owned category. Tasks keep existing; the storage layer
// clears their category reference.
func (uc *UseCase) Delete(ctx context.Context, id, ownerID string) error {
	return uc.categories.Delete(ctx, id, ownerID)
}
