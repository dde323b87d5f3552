package repository

import (
	"context"

	"github.com/taskflow/backend/domain"
)

type CommentRepository interface {
	// GetByID fetches a comment without an author filter. Deletion applies
	// its own three-way permission check on top of this.
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	// GetAuthored scopes the lookup to the comment's author.
	GetAuthored(ctx context.Context, id, authorID string) (*domain.Comment, error)
	ListForTask(ctx context.Context, taskID string) ([]domain.CommentWithAuthor, error)
	Create(ctx context.Context, comment *domain.Comment) error
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}
