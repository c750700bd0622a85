// Package role implements the Role repository using PostgreSQL.
package role

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/editorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const (
	listRolesSQL = `SELECT id, name FROM roles ORDER BY id`

	getRoleByIDSQL = `SELECT id, name FROM roles WHERE id = $1`

	getRoleByNameSQL = `SELECT id, name FROM roles WHERE name = $1`

	ensureRoleSQL = `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
)

// Repo provides role persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new role repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns all roles ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listRolesSQL)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	roles := make([]domain.Role, 0)
	for rows.Next() {
		var (
			role domain.Role
			name string
		)
		if err := rows.Scan(&role.ID, &name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		role.Name = domain.RoleName(name)
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}

	return roles, nil
}

// GetByID returns a role by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	role, err := scanRole(q.QueryRow(ctx, getRoleByIDSQL, id))
	if err != nil {
		return domain.Role{}, postgres.MapError(err, "role", id)
	}
	return role, nil
}

// GetByName returns a role by its unique name.
func (r *Repo) GetByName(ctx context.Context, name domain.RoleName) (domain.Role, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	role, err := scanRole(q.QueryRow(ctx, getRoleByNameSQL, string(name)))
	if err != nil {
		return domain.Role{}, postgres.MapError(err, "role "+string(name), 0)
	}
	return role, nil
}

// EnsureExists inserts every missing role name. Existing roles are untouched.
func (r *Repo) EnsureExists(ctx context.Context, names ...domain.RoleName) error {
	if len(names) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, n := range names {
		batch.Queue(ensureRoleSQL, string(n))
	}

	br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer br.Close()

	for _, n := range names {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("ensure role %s: %w", n, err)
		}
	}

	return nil
}

func scanRole(row pgx.Row) (domain.Role, error) {
	var (
		role domain.Role
		name string
	)
	if err := row.Scan(&role.ID, &name); err != nil {
		return domain.Role{}, err
	}
	role.Name = domain.RoleName(name)
	return role, nil
}
