package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/repository"
)

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a Postgres-backed implementation of CommentRepository.
func NewCommentRepository(pool *pgxpool.Pool) repository.CommentRepository {
	return &commentRepository{pool: pool}
}

const commentColumns = `id, content, task_id, user_id, created_at, updated_at`

func (r *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	const query = `
	SELECT ` + commentColumns + `
	FROM comments
	WHERE id = $1
	`
	return scanComment(r.pool.QueryRow(ctx, query, id))
}

func (r *commentRepository) GetAuthored(ctx context.Context, id, authorID string) (*domain.Comment, error) {
	const query = `
	SELECT ` + commentColumns + `
	FROM comments
	WHERE id = $1 AND user_id = $2
	`
	return scanComment(r.pool.QueryRow(ctx, query, id, authorID))
}

func (r *commentRepository) ListForTask(ctx context.Context, taskID string) ([]domain.CommentWithAuthor, error) {
	const query = `
	SELECT c.id, c.content, c.task_id, c.user_id, c.created_at, c.updated_at,
		u.id, u.first_name, u.last_name
	FROM comments c
	JOIN users u ON u.id = c.user_id
	WHERE c.task_id = $1
	ORDER BY c.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.CommentWithAuthor
	for rows.Next() {
		comment, err := scanCommentWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *comment)
	}
	return comments, rows.Err()
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if comment == nil {
		return domain.ErrInvalidPayload
	}
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO comments (id, content, task_id, user_id)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at, updated_at
	`

	return r.pool.QueryRow(ctx, query,
		comment.ID,
		comment.Content,
		comment.TaskID,
		comment.UserID,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)
}

func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if comment == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE comments
	SET content = $3,
		updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		comment.ID,
		comment.UserID,
		comment.Content,
	).Scan(&comment.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM comments WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var comment domain.Comment
	if err := row.Scan(
		&comment.ID,
		&comment.Content,
		&comment.TaskID,
		&comment.UserID,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func scanCommentWithAuthor(row pgx.Row) (*domain.CommentWithAuthor, error) {
	var comment domain.CommentWithAuthor
	if err := row.Scan(
		&comment.ID,
		&comment.Content,
		&comment.TaskID,
		&comment.UserID,
		&comment.CreatedAt,
		&comment.UpdatedAt,
		&comment.User.ID,
		&comment.User.FirstName,
		&comment.User.LastName,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}
