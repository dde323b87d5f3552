package repository

import (
	"context"

	"github.com/taskflow/backend/domain"
)

type CategoryRepository interface {
	GetOwned(ctx context.Context, id, ownerID string) (*domain.Category, error)
	List(ctx context.Context, ownerID string) ([]domain.Category, error)
	// FindByName probes the per-owner name uniqueness invariant. excludeID,
	// when non-empty, skips the record being updated.
	FindByName(ctx context.Context, ownerID, name, excludeID string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id, ownerID string) error
}
