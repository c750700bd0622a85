package catalog

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/editorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// DomainRepo provides domain persistence. Reads join the owning category.
type DomainRepo struct {
	pool *pgxpool.Pool
}

// NewDomainRepo creates a new domain repository.
func NewDomainRepo(pool *pgxpool.Pool) *DomainRepo {
	return &DomainRepo{pool: pool}
}

func selectDomains() sq.SelectBuilder {
	return postgres.Builder().
		Select("d.id", "d.name", "d.full_url", "d.domain", "d.category_id", "c.name", "d.created_at").
		From("domains d").
		Join("domain_categories c ON c.id = d.category_id")
}

const deleteDomainSQL = `DELETE FROM domains WHERE id = $1`

// List returns all domains in alphabetical order.
func (r *DomainRepo) List(ctx context.Context) ([]domain.Domain, error) {
	query, args, err := selectDomains().OrderBy("d.name", "d.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list domains: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()

	domains := make([]domain.Domain, 0)
	for rows.Next() {
		d, err := scanDomain(rows)
		if err != nil {
			return nil, fmt.Errorf("scan domain: %w", err)
		}
		domains = append(domains, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate domains: %w", err)
	}

	return domains, nil
}

// GetByID returns a domain by primary key.
func (r *DomainRepo) GetByID(ctx context.Context, id int64) (*domain.Domain, error) {
	query, args, err := selectDomains().Where(sq.Eq{"d.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get domain: %w", err)
	}

	d, err := scanDomain(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "domain", id)
	}
	return &d, nil
}

// Create inserts a domain and returns it with its category.
func (r *DomainRepo) Create(ctx context.Context, d *domain.Domain) (*domain.Domain, error) {
	query, args, err := postgres.Builder().
		Insert("domains").
		Columns("name", "full_url", "domain", "category_id").
		Values(d.Name, d.FullURL, d.Host, d.CategoryID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create domain: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "domain", 0)
	}

	return r.GetByID(ctx, id)
}

// Update applies a partial patch and returns the re-read domain.
func (r *DomainRepo) Update(ctx context.Context, id int64, p domain.DomainPatch) (*domain.Domain, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update("domains").Where(sq.Eq{"id": id})
	if p.Name != nil {
		b = b.Set("name", *p.Name)
	}
	if p.FullURL != nil {
		b = b.Set("full_url", *p.FullURL)
	}
	if p.Host != nil {
		b = b.Set("domain", *p.Host)
	}
	if p.CategoryID != nil {
		b = b.Set("category_id", *p.CategoryID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update domain: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "domain", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.NotFound("domain", id)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a domain.
func (r *DomainRepo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteDomainSQL, id)
	if err != nil {
		return postgres.MapError(err, "domain", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("domain", id)
	}
	return nil
}

func scanDomain(row pgx.Row) (domain.Domain, error) {
	var d domain.Domain
	err := row.Scan(&d.ID, &d.Name, &d.FullURL, &d.Host, &d.CategoryID, &d.Category.Name, &d.CreatedAt)
	if err != nil {
		return domain.Domain{}, err
	}
	d.Category.ID = d.CategoryID
	return d, nil
}
