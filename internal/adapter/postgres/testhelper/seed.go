package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueName returns prefix followed by a unique suffix. Tests share one
// database, so every name with a unique constraint goes through here.
func UniqueName(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedRole makes sure the role exists and returns it.
func SeedRole(t *testing.T, pool *pgxpool.Pool, name domain.RoleName) domain.Role {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx, `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, string(name))
	if err != nil {
		t.Fatalf("testhelper: SeedRole insert: %v", err)
	}

	role := domain.Role{Name: name}
	if err := pool.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, string(name)).Scan(&role.ID); err != nil {
		t.Fatalf("testhelper: SeedRole select: %v", err)
	}
	return role
}

// SeedUser creates an active user with the given role and a placeholder
// password hash. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, roleName domain.RoleName) domain.User {
	t.Helper()
	ctx := context.Background()

	role := SeedRole(t, pool, roleName)
	user := domain.User{
		Email:        "testuser-" + uniqueSuffix() + "@example.com",
		PasswordHash: "not-a-bcrypt-hash",
		IsActive:     true,
		RoleID:       role.ID,
		Role:         role,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, hashed_password, is_active, role_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		user.Email, user.PasswordHash, user.IsActive, user.RoleID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedDomainCategory creates a catalog category with a unique name.
func SeedDomainCategory(t *testing.T, pool *pgxpool.Pool) domain.DomainCategory {
	t.Helper()

	cat := domain.DomainCategory{Name: UniqueName("cat")}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO domain_categories (name) VALUES ($1) RETURNING id`, cat.Name,
	).Scan(&cat.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedDomainCategory insert: %v", err)
	}
	return cat
}

// SeedDomain creates a domain in the given category.
func SeedDomain(t *testing.T, pool *pgxpool.Pool, cat domain.DomainCategory) domain.Domain {
	t.Helper()

	suffix := uniqueSuffix()
	d := domain.Domain{
		Name:       "Site " + suffix,
		FullURL:    "https://www." + suffix + ".example",
		Host:       suffix + ".example",
		CategoryID: cat.ID,
		Category:   cat,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO domains (name, full_url, domain, category_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		d.Name, d.FullURL, d.Host, d.CategoryID,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDomain insert: %v", err)
	}
	return d
}

// SeedTopicCategory creates a topic category with a unique name.
func SeedTopicCategory(t *testing.T, pool *pgxpool.Pool, fixed bool, order int) domain.TopicCategory {
	t.Helper()

	cat := domain.TopicCategory{Name: UniqueName("TOPICS"), DisplayOrder: order, IsFixed: fixed}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO topic_categories (name, display_order, is_fixed) VALUES ($1, $2, $3) RETURNING id`,
		cat.Name, cat.DisplayOrder, cat.IsFixed,
	).Scan(&cat.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedTopicCategory insert: %v", err)
	}
	return cat
}

// SeedAutoTopic creates an auto topic template.
func SeedAutoTopic(t *testing.T, pool *pgxpool.Pool, active bool, order int) domain.AutoTopic {
	t.Helper()

	a := domain.AutoTopic{Title: UniqueName("Tiempo en ZONA"), IsActive: active, DisplayOrder: order}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO auto_topics (title, is_active, display_order) VALUES ($1, $2, $3) RETURNING id`,
		a.Title, a.IsActive, a.DisplayOrder,
	).Scan(&a.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAutoTopic insert: %v", err)
	}
	return a
}

// SeedDailyTopic creates a draft daily topic, optionally in a category.
func SeedDailyTopic(t *testing.T, pool *pgxpool.Pool, categoryID *int64) domain.DailyTopic {
	t.Helper()

	topic := domain.DailyTopic{Title: UniqueName("Topic"), CategoryID: categoryID, IsDraft: true}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO daily_topics (title, category_id) VALUES ($1, $2) RETURNING id, created_at`,
		topic.Title, topic.CategoryID,
	).Scan(&topic.ID, &topic.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDailyTopic insert: %v", err)
	}
	return topic
}
