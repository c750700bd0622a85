// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/editorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
// Every read hydrates the user's role.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Query builders
// ---------------------------------------------------------------------------

var userColumns = []string{
	"u.id", "u.email", "u.hashed_password", "u.smtp_password",
	"u.first_name", "u.last_name", "u.avatar", "u.is_active",
	"u.role_id", "r.name", "u.created_at",
}

func selectUsers() sq.SelectBuilder {
	return postgres.Builder().
		Select(userColumns...).
		From("users u").
		Join("roles r ON r.id = u.role_id")
}

const emailExistsSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`

const deleteUserSQL = `DELETE FROM users WHERE id = $1`

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"u.id": id}, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"u.email": email}, 0)
}

// List returns all users ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, selectUsers().OrderBy("u.id"))
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.User, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// GetByIDs returns the users with the given ids ordered by id.
// Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	return r.list(ctx, selectUsers().Where(sq.Eq{"u.id": ids}).OrderBy("u.id"))
}

// EmailExists reports whether another user (id != excludeID) owns email.
// Pass 0 to check against every user.
func (r *Repo) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, emailExistsSQL, email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id int64) (*domain.User, error) {
	query, args, err := selectUsers().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user and returns it with its role.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert("users").
		Columns("email", "hashed_password", "smtp_password", "first_name", "last_name", "avatar", "is_active", "role_id").
		Values(u.Email, u.PasswordHash, ptrStringToPgText(u.SMTPPassword), ptrStringToPgText(u.FirstName),
			ptrStringToPgText(u.LastName), ptrStringToPgText(u.Avatar), u.IsActive, u.RoleID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	return r.GetByID(ctx, id)
}

// Update applies a partial patch. An empty patch only re-reads the row.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) Update(ctx context.Context, id int64, p domain.UserPatch) (*domain.User, error) {
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update("users").Where(sq.Eq{"id": id})
	if p.Email != nil {
		b = b.Set("email", *p.Email)
	}
	if p.PasswordHash != nil {
		b = b.Set("hashed_password", *p.PasswordHash)
	}
	if p.RoleID != nil {
		b = b.Set("role_id", *p.RoleID)
	}
	if p.IsActive != nil {
		b = b.Set("is_active", *p.IsActive)
	}
	if p.FirstName != nil {
		b = b.Set("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		b = b.Set("last_name", *p.LastName)
	}
	if p.Avatar != nil {
		b = b.Set("avatar", *p.Avatar)
	}
	switch {
	case p.ClearSMTPPassword:
		b = b.Set("smtp_password", nil)
	case p.SMTPPassword != nil:
		b = b.Set("smtp_password", *p.SMTPPassword)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.NotFound("user", id)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a user. Email logs keep their sender email; sender_id is nulled.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteUserSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("user", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u        domain.User
		roleName string

		smtpPassword, firstName, lastName, avatar pgtype.Text
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &smtpPassword,
		&firstName, &lastName, &avatar, &u.IsActive,
		&u.RoleID, &roleName, &u.CreatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.SMTPPassword = pgTextToPtr(smtpPassword)
	u.FirstName = pgTextToPtr(firstName)
	u.LastName = pgTextToPtr(lastName)
	u.Avatar = pgTextToPtr(avatar)
	u.Role = domain.Role{ID: u.RoleID, Name: domain.RoleName(roleName)}
	return u, nil
}

// pgTextToPtr returns a *string (nil when NULL).
func pgTextToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil → NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
