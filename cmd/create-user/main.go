// Command create-user inserts a user with the given role. Roles are seeded
// by the server at startup, so run it once before using this command.
//
// Usage:
//
//	create-user --email=ana@example.com --password=secret --role=admin
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/editorial-backend/internal/adapter/postgres/role"
	"github.com/heartmarshall/editorial-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

type roleRepo interface {
	GetByName(ctx context.Context, name domain.RoleName) (domain.Role, error)
}

type userRepo interface {
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

// errUsage marks input errors that are reported without touching the database.
var errUsage = errors.New("usage")

func main() {
	email := flag.String("email", "", "email of the new user")
	password := flag.String("password", "", "initial password")
	roleName := flag.String("role", "", "role: admin, responsable or usuario")
	flag.Parse()

	if *email == "" || *password == "" || !domain.RoleName(*roleName).IsValid() {
		fmt.Fprintln(os.Stderr, "Usage: create-user --email=ana@example.com --password=secret --role={admin|responsable|usuario}")
		os.Exit(2)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	msg, err := createUser(ctx, role.New(pool), user.New(pool), auth.NewPasswordHasher(0), *email, *password, domain.RoleName(*roleName))
	if err != nil {
		fmt.Println(err)
		pool.Close()
		os.Exit(1)
	}
	fmt.Println(msg)
}

func createUser(
	ctx context.Context,
	roles roleRepo,
	users userRepo,
	hasher passwordHasher,
	email, password string,
	roleName domain.RoleName,
) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" || !roleName.IsValid() {
		return "", errUsage
	}

	r, err := roles.GetByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("Error: role '%s' not found. Arranca la app primero para crear los roles.", roleName) //nolint:staticcheck
		}
		return "", fmt.Errorf("get role: %w", err)
	}

	exists, err := users.EmailExists(ctx, email, 0)
	if err != nil {
		return "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return "", fmt.Errorf("Error: el usuario '%s' ya existe.", email) //nolint:staticcheck
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	if _, err := users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		RoleID:       r.ID,
	}); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	return fmt.Sprintf("Usuario '%s' creado con rol '%s'.", email, roleName), nil
}
