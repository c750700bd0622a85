// Package catalog implements the domain catalog repositories using PostgreSQL:
// domain categories and the domains that belong to them.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/editorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const (
	listCategoriesSQL = `SELECT id, name FROM domain_categories ORDER BY name`

	getCategorySQL = `SELECT id, name FROM domain_categories WHERE id = $1`

	createCategorySQL = `INSERT INTO domain_categories (name) VALUES ($1) RETURNING id, name`

	updateCategorySQL = `UPDATE domain_categories SET name = $2 WHERE id = $1 RETURNING id, name`

	deleteCategorySQL = `DELETE FROM domain_categories WHERE id = $1`

	categoryNameExistsSQL = `SELECT EXISTS(SELECT 1 FROM domain_categories WHERE name = $1 AND id <> $2)`

	categoryHasDomainsSQL = `SELECT EXISTS(SELECT 1 FROM domains WHERE category_id = $1)`
)

// CategoryRepo provides domain category persistence.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepo creates a new domain category repository.
func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// List returns all categories in alphabetical order.
func (r *CategoryRepo) List(ctx context.Context) ([]domain.DomainCategory, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list domain categories: %w", err)
	}
	defer rows.Close()

	cats := make([]domain.DomainCategory, 0)
	for rows.Next() {
		var c domain.DomainCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan domain category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate domain categories: %w", err)
	}

	return cats, nil
}

// GetByID returns a category by primary key.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.DomainCategory, error) {
	var c domain.DomainCategory
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getCategorySQL, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, postgres.MapError(err, "domain_category", id)
	}
	return &c, nil
}

// Create inserts a category.
func (r *CategoryRepo) Create(ctx context.Context, name string) (*domain.DomainCategory, error) {
	var c domain.DomainCategory
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createCategorySQL, name).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, postgres.MapError(err, "domain_category", 0)
	}
	return &c, nil
}

// Update renames a category.
func (r *CategoryRepo) Update(ctx context.Context, id int64, name string) (*domain.DomainCategory, error) {
	var c domain.DomainCategory
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateCategorySQL, id, name).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, postgres.MapError(err, "domain_category", id)
	}
	return &c, nil
}

// Delete removes a category. A category still referenced by a domain
// yields domain.ErrInvalidState.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteCategorySQL, id)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return fmt.Errorf("domain_category %d: %w", id, domain.ErrInvalidState)
		}
		return postgres.MapError(err, "domain_category", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("domain_category", id)
	}
	return nil
}

// NameExists reports whether another category (id != excludeID) is called name.
func (r *CategoryRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, categoryNameExistsSQL, name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check domain category name: %w", err)
	}
	return exists, nil
}

// HasDomains reports whether any domain references the category.
func (r *CategoryRepo) HasDomains(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, categoryHasDomainsSQL, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check domain category usage: %w", err)
	}
	return exists, nil
}
