package comment

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/repository"
)

// Content bounds hold for every caller, not only the HTTP layer.
const maxContentRunes = 500

var (
	errContentEmpty   = domain.NewError(domain.ErrCodeInvalid, "comment content is required")
	errContentTooLong = domain.NewError(domain.ErrCodeInvalid, "comment content cannot exceed 500 characters")
)

func validateContent(content string) error {
	if content == "" {
		return errContentEmpty
	}
	if utf8.RuneCountInString(content) > maxContentRunes {
		return errContentTooLong
	}
	return nil
}

type UseCase struct {
	comments repository.CommentRepository
	tasks    repository.TaskRepository
	users    repository.UserRepository
	logger   *zap.Logger
}

func New(
	comments repository.CommentRepository,
	tasks repository.TaskRepository,
	users repository.UserRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		comments: comments,
		tasks:    tasks,
		users:    users,
		logger:   logger,
	}
}

// ListForTask returns a task's comments, newest first. The task is looked up
// by id alone: comment visibility is not restricted to the task owner.
func (uc *UseCase) ListForTask(ctx context.Context, taskID string) ([]domain.CommentWithAuthor, error) {
	if _, err := uc.tasks.GetAny(ctx, taskID); err != nil {
		return nil, err
	}
	return uc.comments.ListForTask(ctx, taskID)
}

// Create attaches a comment to any existing task on behalf of the caller.
func (uc *UseCase) Create(ctx context.Context, taskID, content string, caller domain.Identity) (*domain.CommentWithAuthor, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if _, err := uc.tasks.GetAny(ctx, taskID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Content: content,
		TaskID:  taskID,
		UserID:  caller.UserID,
	}
	if err := uc.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return uc.withAuthor(ctx, comment)
}

// Update rewrites a comment's content. Only the author may update; the
// author filter is part of the lookup, so anyone else sees not-found.
func (uc *UseCase) Update(ctx context.Context, id, content string, caller domain.Identity) (*domain.CommentWithAuthor, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	comment, err := uc.comments.GetAuthored(ctx, id, caller.UserID)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := uc.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return uc.withAuthor(ctx, comment)
}

// Delete removes a comment when the caller is its author, the owner of the
// parent task, or an admin. This is a three-way permission, wider than the
// single-owner rule used elsewhere.
func (uc *UseCase) Delete(ctx context.Context, id string, caller domain.Identity) error {
	comment, err := uc.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	allowed := comment.UserID == caller.UserID || caller.IsAdmin()
	if !allowed {
		task, err := uc.tasks.GetAny(ctx, comment.TaskID)
		if err != nil {
			return err
		}
		allowed = task.OwnerID == caller.UserID
	}
	if !allowed {
		return domain.ErrForbidden
	}

	return uc.comments.Delete(ctx, id)
}

func (uc *UseCase) withAuthor(ctx context.Context, comment *domain.Comment) (*domain.CommentWithAuthor, error) {
	author, err := uc.users.GetByID(ctx, comment.UserID)
	if err != nil {
		return nil, err
	}
	return &domain.CommentWithAuthor{
		Comment: *comment,
		User: domain.AuthorRef{
			ID:        author.ID,
			FirstName: author.FirstName,
			LastName:  author.LastName,
		},
	}, nil
}
