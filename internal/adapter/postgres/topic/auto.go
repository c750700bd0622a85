package topic

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/editorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const autoColumns = `id, title, is_active, display_order`

const (
	getAutoTopicSQL = `SELECT ` + autoColumns + ` FROM auto_topics WHERE id = $1`

	createAutoTopicSQL = `INSERT INTO auto_topics (title, display_order)
VALUES ($1, $2)
RETURNING ` + autoColumns

	deleteAutoTopicSQL = `DELETE FROM auto_topics WHERE id = $1`

	ensureAutoTopicSQL = `INSERT INTO auto_topics (title, display_order)
SELECT $1, $2
WHERE NOT EXISTS (SELECT 1 FROM auto_topics WHERE title = $1)`
)

// AutoRepo provides auto topic template persistence.
type AutoRepo struct {
	pool *pgxpool.Pool
}

// NewAutoRepo creates a new auto topic repository.
func NewAutoRepo(pool *pgxpool.Pool) *AutoRepo {
	return &AutoRepo{pool: pool}
}

// List returns every template by display order.
func (r *AutoRepo) List(ctx context.Context) ([]domain.AutoTopic, error) {
	return r.list(ctx, nil)
}

// ListActive returns the active templates by display order.
func (r *AutoRepo) ListActive(ctx context.Context) ([]domain.AutoTopic, error) {
	return r.list(ctx, sq.Eq{"is_active": true})
}

func (r *AutoRepo) list(ctx context.Context, where sq.Sqlizer) ([]domain.AutoTopic, error) {
	b := postgres.Builder().
		Select("id", "title", "is_active", "display_order").
		From("auto_topics").
		OrderBy("display_order", "id")
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list auto topics: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list auto topics: %w", err)
	}
	defer rows.Close()

	autos := make([]domain.AutoTopic, 0)
	for rows.Next() {
		a, err := scanAuto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan auto topic: %w", err)
		}
		autos = append(autos, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate auto topics: %w", err)
	}

	return autos, nil
}

// GetByID returns a template by primary key.
func (r *AutoRepo) GetByID(ctx context.Context, id int64) (*domain.AutoTopic, error) {
	a, err := scanAuto(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getAutoTopicSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "auto_topic", id)
	}
	return &a, nil
}

// Create inserts an active template.
func (r *AutoRepo) Create(ctx context.Context, title string, displayOrder int) (*domain.AutoTopic, error) {
	a, err := scanAuto(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createAutoTopicSQL, title, displayOrder))
	if err != nil {
		return nil, postgres.MapError(err, "auto_topic", 0)
	}
	return &a, nil
}

// Update applies a partial patch and returns the updated template.
func (r *AutoRepo) Update(ctx context.Context, id int64, p domain.AutoTopicPatch) (*domain.AutoTopic, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update("auto_topics").Where(sq.Eq{"id": id}).Suffix("RETURNING " + autoColumns)
	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.IsActive != nil {
		b = b.Set("is_active", *p.IsActive)
	}
	if p.DisplayOrder != nil {
		b = b.Set("display_order", *p.DisplayOrder)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update auto topic: %w", err)
	}

	a, err := scanAuto(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "auto_topic", id)
	}
	return &a, nil
}

// Delete removes a template.
func (r *AutoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteAutoTopicSQL, id)
	if err != nil {
		return postgres.MapError(err, "auto_topic", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("auto_topic", id)
	}
	return nil
}

// EnsureTitle inserts a template unless one with the same title exists.
// Reports whether a row was inserted.
func (r *AutoRepo) EnsureTitle(ctx context.Context, title string, displayOrder int) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, ensureAutoTopicSQL, title, displayOrder)
	if err != nil {
		return false, fmt.Errorf("ensure auto topic %q: %w", title, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanAuto(row pgx.Row) (domain.AutoTopic, error) {
	var a domain.AutoTopic
	if err := row.Scan(&a.ID, &a.Title, &a.IsActive, &a.DisplayOrder); err != nil {
		return domain.AutoTopic{}, err
	}
	return a, nil
}
