package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

const taskColumns = `t.id, t.title, COALESCE(t.description, ''), t.status, t.priority, t.due_date, t.owner_id, t.assignee_id, t.category_id, t.created_at, t.updated_at`

func (r *taskRepository) GetOwned(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	const query = `
	SELECT ` + taskColumns + `
	FROM tasks t
	WHERE t.id = $1 AND t.owner_id = $2
	`
	return scanTask(r.pool.QueryRow(ctx, query, id, ownerID))
}

func (r *taskRepository) GetAny(ctx context.Context, id string) (*domain.Task, error) {
	const query = `
	SELECT ` + taskColumns + `
	FROM tasks t
	WHERE t.id = $1
	`
	return scanTask(r.pool.QueryRow(ctx, query, id))
}

func (r *taskRepository) GetDetail(ctx context.Context, id, ownerID string) (*domain.TaskDetail, error) {
	task, err := r.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	detail := &domain.TaskDetail{Task: *task, Comments: []domain.CommentWithAuthor{}}

	if task.CategoryID != nil {
		const categoryQuery = `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE id = $1
		`
		category, err := scanCategory(r.pool.QueryRow(ctx, categoryQuery, *task.CategoryID))
		if err != nil && !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, err
		}
		detail.Category = category
	}

	const commentsQuery = `
	SELECT c.id, c.content, c.task_id, c.user_id, c.created_at, c.updated_at,
		u.id, u.first_name, u.last_name
	FROM comments c
	JOIN users u ON u.id = c.user_id
	WHERE c.task_id = $1
	ORDER BY c.created_at DESC
	`
	rows, err := r.pool.Query(ctx, commentsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		comment, err := scanCommentWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		detail.Comments = append(detail.Comments, *comment)
	}
	return detail, rows.Err()
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.TaskWithCategory, error) {
	var sb strings.Builder
	sb.WriteString(`
	SELECT ` + taskColumns + `, c.id, c.name
	FROM tasks t
	LEFT JOIN categories c ON c.id = t.category_id
	WHERE t.owner_id = $1`)

	args := []interface{}{filter.OwnerID}
	addClause := func(clause string, value interface{}) {
		args = append(args, value)
		fmt.Fprintf(&sb, clause, len(args))
	}

	if filter.Status != "" {
		addClause(" AND t.status = $%d", filter.Status)
	}
	if filter.Priority != "" {
		addClause(" AND t.priority = $%d", filter.Priority)
	}
	if filter.CategoryID != "" {
		addClause(" AND t.category_id = $%d", filter.CategoryID)
	}
	if filter.DueFrom != nil {
		addClause(" AND t.due_date >= $%d", *filter.DueFrom)
	}
	if filter.DueBefore != nil {
		addClause(" AND t.due_date < $%d", *filter.DueBefore)
	}

	// The sort field is resolved through the allow-list; anything
	// unrecognized falls back to created_at.
	column, ok := repository.TaskSortColumn(filter.SortBy)
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	fmt.Fprintf(&sb, " ORDER BY t.%s %s", column, direction)

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.TaskWithCategory
	for rows.Next() {
		var item domain.TaskWithCategory
		var categoryID, categoryName *string
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.Status,
			&item.Priority,
			&item.DueDate,
			&item.OwnerID,
			&item.AssigneeID,
			&item.CategoryID,
			&item.CreatedAt,
			&item.UpdatedAt,
			&categoryID,
			&categoryName,
		); err != nil {
			return nil, err
		}
		if categoryID != nil && categoryName != nil {
			item.Category = &domain.CategoryRef{ID: *categoryID, Name: *categoryName}
		}
		tasks = append(tasks, item)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO tasks (id, title, description, status, priority, due_date, owner_id, assignee_id, category_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.Title,
		nullString(&task.Description),
		task.Status,
		task.Priority,
		task.DueDate,
		task.OwnerID,
		task.AssigneeID,
		task.CategoryID,
	).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		return err
	}
	return nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tasks
	SET title = $3,
		description = $4,
		status = $5,
		priority = $6,
		due_date = $7,
		assignee_id = $8,
		category_id = $9,
		updated_at = NOW()
	WHERE id = $1 AND owner_id = $2
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.OwnerID,
		task.Title,
		nullString(&task.Description),
		task.Status,
		task.Priority,
		task.DueDate,
		task.AssigneeID,
		task.CategoryID,
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id, ownerID string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.OwnerID,
		&task.AssigneeID,
		&task.CategoryID,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}
