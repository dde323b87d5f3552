package repository

import (
	"context"
	"time"

	"github.com/taskflow/backend/domain"
)

// TaskFilter narrows a task listing. SortBy holds the API field name and is
// resolved through TaskSortColumn, so caller-supplied values never reach the
// query builder directly.
type TaskFilter struct {
	OwnerID    string
	Status     domain.TaskStatus
	Priority   domain.TaskPriority
	CategoryID string
	DueFrom    *time.Time
	DueBefore  *time.Time
	SortBy     string
	SortDesc   bool
}

// Sortable task fields, keyed by their API names.
var taskSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"dueDate":   "due_date",
	"priority":  "priority",
	"status":    "status",
	"title":     "title",
}

// TaskSortColumn resolves an API sort field to its column name. Unknown
// fields are rejected rather than interpolated into the query.
func TaskSortColumn(field string) (string, bool) {
	column, ok := taskSortColumns[field]
	return column, ok
}

type TaskRepository interface {
	// GetOwned fetches a task by id scoped to its owner in a single query,
	// so a non-owner's request surfaces as not-found.
	GetOwned(ctx context.Context, id, ownerID string) (*domain.Task, error)
	// GetAny fetches a task by id without an ownership filter. Used by the
	// comment paths, where task visibility is not restricted to the owner.
	GetAny(ctx context.Context, id string) (*domain.Task, error)
	// GetDetail returns the owner-scoped task with its category and comments.
	GetDetail(ctx context.Context, id, ownerID string) (*domain.TaskDetail, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.TaskWithCategory, error)
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id, ownerID string) error
}
