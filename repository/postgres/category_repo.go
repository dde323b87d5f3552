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

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository returns a Postgres-backed implementation of CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) repository.CategoryRepository {
	return &categoryRepository{pool: pool}
}

const categoryColumns = `id, name, COALESCE(description, ''), user_id, created_at, updated_at`

func (r *categoryRepository) GetOwned(ctx context.Context, id, ownerID string) (*domain.Category, error) {
	const query = `
	SELECT ` + categoryColumns + `
	FROM categories
	WHERE id = $1 AND user_id = $2
	`
	return scanCategory(r.pool.QueryRow(ctx, query, id, ownerID))
}

func (r *categoryRepository) List(ctx context.Context, ownerID string) ([]domain.Category, error) {
	const query = `
	SELECT ` + categoryColumns + `
	FROM categories
	WHERE user_id = $1
	ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) FindByName(ctx context.Context, ownerID, name, excludeID string) (*domain.Category, error) {
	const query = `
	SELECT ` + categoryColumns + `
	FROM categories
	WHERE user_id = $1 AND name = $2 AND ($3 = '' OR id <> $3)
	`
	return scanCategory(r.pool.QueryRow(ctx, query, ownerID, name, excludeID))
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return domain.ErrInvalidPayload
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO categories (id, name, description, user_id)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		category.ID,
		category.Name,
		nullString(&category.Description),
		category.UserID,
	).Scan(&category.CreatedAt, &category.UpdatedAt); err != nil {
		if isUniqueViolation(err, "categories_user_id_name_key") {
			return domain.ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE categories
	SET name = $3,
		description = $4,
		updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		category.ID,
		category.UserID,
		category.Name,
		nullString(&category.Description),
	).Scan(&category.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCategoryNotFound
		}
		if isUniqueViolation(err, "categories_user_id_name_key") {
			return domain.ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id, ownerID string) error {
	const query = `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var category domain.Category
	if err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.UserID,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
