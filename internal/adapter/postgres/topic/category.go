// Package topic implements the editorial topic repositories using PostgreSQL:
// topic categories, auto topic templates and daily topics.
package topic

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/editorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const categoryColumns = `id, name, display_order, is_fixed`

const (
	// Temporary categories first, then fixed ones in display order.
	listTopicCategoriesSQL = `SELECT ` + categoryColumns + ` FROM topic_categories
ORDER BY is_fixed ASC, display_order ASC, name ASC`

	getTopicCategorySQL = `SELECT ` + categoryColumns + ` FROM topic_categories WHERE id = $1`

	getTopicCategoryByNameSQL = `SELECT ` + categoryColumns + ` FROM topic_categories WHERE name = $1`

	createTopicCategorySQL = `INSERT INTO topic_categories (name, display_order)
VALUES ($1, $2)
RETURNING ` + categoryColumns

	updateTopicCategorySQL = `UPDATE topic_categories SET name = $2, display_order = $3
WHERE id = $1
RETURNING ` + categoryColumns

	deleteTopicCategorySQL = `DELETE FROM topic_categories WHERE id = $1`

	topicCategoryNameExistsSQL = `SELECT EXISTS(SELECT 1 FROM topic_categories WHERE name = $1 AND id <> $2)`

	upsertFixedCategorySQL = `INSERT INTO topic_categories (name, display_order, is_fixed)
VALUES ($1, $2, TRUE)
ON CONFLICT (name) DO UPDATE SET is_fixed = TRUE, display_order = EXCLUDED.display_order`
)

// CategoryRepo provides topic category persistence.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepo creates a new topic category repository.
func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// List returns all categories, temporary ones first.
func (r *CategoryRepo) List(ctx context.Context) ([]domain.TopicCategory, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listTopicCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list topic categories: %w", err)
	}
	defer rows.Close()

	cats := make([]domain.TopicCategory, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan topic category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topic categories: %w", err)
	}

	return cats, nil
}

// GetByID returns a category by primary key.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.TopicCategory, error) {
	c, err := scanCategory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getTopicCategorySQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "topic_category", id)
	}
	return &c, nil
}

// GetByName returns a category by its unique name.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*domain.TopicCategory, error) {
	c, err := scanCategory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getTopicCategoryByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "topic_category "+name, 0)
	}
	return &c, nil
}

// Create inserts a temporary category.
func (r *CategoryRepo) Create(ctx context.Context, name string, displayOrder int) (*domain.TopicCategory, error) {
	c, err := scanCategory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createTopicCategorySQL, name, displayOrder))
	if err != nil {
		return nil, postgres.MapError(err, "topic_category", 0)
	}
	return &c, nil
}

// Update sets name and display order. The fixed flag is never changed here.
func (r *CategoryRepo) Update(ctx context.Context, id int64, name string, displayOrder int) (*domain.TopicCategory, error) {
	c, err := scanCategory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateTopicCategorySQL, id, name, displayOrder))
	if err != nil {
		return nil, postgres.MapError(err, "topic_category", id)
	}
	return &c, nil
}

// Delete removes a category. Callers detach linked topics first.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteTopicCategorySQL, id)
	if err != nil {
		return postgres.MapError(err, "topic_category", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("topic_category", id)
	}
	return nil
}

// NameExists reports whether another category (id != excludeID) is called name.
func (r *CategoryRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, topicCategoryNameExistsSQL, name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check topic category name: %w", err)
	}
	return exists, nil
}

// UpsertFixed creates or promotes a fixed category with the given order.
func (r *CategoryRepo) UpsertFixed(ctx context.Context, name string, displayOrder int) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, upsertFixedCategorySQL, name, displayOrder); err != nil {
		return fmt.Errorf("upsert fixed category %s: %w", name, err)
	}
	return nil
}

func scanCategory(row pgx.Row) (domain.TopicCategory, error) {
	var c domain.TopicCategory
	if err := row.Scan(&c.ID, &c.Name, &c.DisplayOrder, &c.IsFixed); err != nil {
		return domain.TopicCategory{}, err
	}
	return c, nil
}
