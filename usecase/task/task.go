package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/repository"
)

type UseCase struct {
	tasks      repository.TaskRepository
	categories repository.CategoryRepository
	logger     *zap.Logger
}

func New(tasks repository.TaskRepository, categories repository.CategoryRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:      tasks,
		categories: categories,
		logger:     logger,
	}
}

type CreateInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     *time.Time
	AssigneeID  *string
	CategoryID  *string
}

// UpdateInput carries an optional patch; nil fields are left untouched. An
// entirely empty patch is a no-op success, not an error.
type UpdateInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	DueDate     *time.Time
	AssigneeID  *string
	CategoryID  *string
}

// ListFilter mirrors the caller-facing query parameters. DueDate selects one
// calendar day: inclusive of its start, exclusive of the next day's start.
type ListFilter struct {
	Status     domain.TaskStatus
	Priority   domain.TaskPriority
	CategoryID string
	DueDate    *time.Time
	SortBy     string
	Order      string
}

func (uc *UseCase) List(ctx context.Context, ownerID string, filter ListFilter) ([]domain.TaskWithCategory, error) {
	repoFilter := repository.TaskFilter{
		OwnerID:    ownerID,
		Status:     filter.Status,
		Priority:   filter.Priority,
		CategoryID: filter.CategoryID,
		SortBy:     filter.SortBy,
		SortDesc:   filter.Order != "asc",
	}
	if repoFilter.SortBy == "" {
		repoFilter.SortBy = "createdAt"
	}
	if filter.DueDate != nil {
		start := filter.DueDate.Truncate(24 * time.Hour)
		end := start.AddDate(0, 0, 1)
		repoFilter.DueFrom = &start
		repoFilter.DueBefore = &end
	}
	return uc.tasks.List(ctx, repoFilter)
}

func (uc *UseCase) GetByID(ctx context.Context, id, ownerID string) (*domain.TaskDetail, error) {
	return uc.tasks.GetDetail(ctx, id, ownerID)
}

// Create persists a task for the caller. A supplied category must belong to
// the caller; otherwise nothing is persisted and the category is reported
// missing rather than foreign.
func (uc *UseCase) Create(ctx context.Context, ownerID string, input CreateInput) (*domain.Task, error) {
	if input.CategoryID != nil {
		if _, err := uc.categories.GetOwned(ctx, *input.CategoryID, ownerID); err != nil {
			return nil, err
		}
	}

	status := input.Status
	if status == "" {
		status = domain.DefaultTaskStatus
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		OwnerID:     ownerID,
		AssigneeID:  input.AssigneeID,
		CategoryID:  input.CategoryID,
	}
	if err := uc.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial patch to an owned task. The owner filter is part
// of the lookup, so a foreign task surfaces as not-found.
func (uc *UseCase) Update(ctx context.Context, id, ownerID string, input UpdateInput) (*domain.Task, error) {
	task, err := uc.tasks.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := uc.categories.GetOwned(ctx, *input.CategoryID, ownerID); err != nil {
			return nil, err
		}
		task.CategoryID = input.CategoryID
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.AssigneeID != nil {
		task.AssigneeID = input.AssigneeID
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (uc *UseCase) Delete(ctx context.Context, id, ownerID string) error {
	return uc.tasks.Delete(ctx, id, ownerID)
}
