//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/editorial-backend/internal/adapter/mail/mailtest"
	"github.com/heartmarshall/editorial-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/editorial-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/editorial-backend/internal/app"
	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/config"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const (
	testSecret   = "test-secret-at-least-32-chars-long!!"
	testPassword = "correct horse battery"
	sportsKey    = "feed-key-e2e"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Mail   *mailtest.Server
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer wires the application exactly as the server binary does,
// against a testcontainers PostgreSQL and an in-process SMTP relay.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	relay := mailtest.Start(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := &config.Config{
		Server: config.ServerConfig{LoginRatePerMin: 1000},
		Auth: config.AuthConfig{
			SecretKey:             testSecret,
			Algorithm:             "HS256",
			AccessTokenExpireMins: 15,
			Issuer:                "e2e",
		},
		CORS: config.CORSConfig{Origins: "http://localhost:5173"},
		SMTP: config.SMTPConfig{
			Host:    relay.Host(),
			Port:    relay.Port(),
			From:    "noreply@example.com",
			Timeout: 5 * time.Second,
		},
		Sports: config.SportsConfig{APIKey: sportsKey},
		Digest: config.DigestConfig{
			Recipients:    "equipo@example.com",
			SubjectPrefix: "Temas del día SEO",
			Timezone:      "Europe/Madrid",
		},
	}

	handler, stop, err := app.Wire(context.Background(), pool, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, Mail: relay}
}

// createUser inserts an active user with a real bcrypt hash of testPassword.
func createUser(t *testing.T, ts *testServer, roleName domain.RoleName) domain.User {
	t.Helper()
	ctx := context.Background()

	var roleID int64
	require.NoError(t, ts.Pool.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, string(roleName)).Scan(&roleID))

	hash, err := auth.NewPasswordHasher(4).Hash(testPassword)
	require.NoError(t, err)

	u, err := userrepo.New(ts.Pool).Create(ctx, &domain.User{
		Email:        testhelper.UniqueName(string(roleName)) + "@example.com",
		PasswordHash: hash,
		IsActive:     true,
		RoleID:       roleID,
	})
	require.NoError(t, err)
	return *u
}

// login authenticates through the API and returns the bearer token.
func login(t *testing.T, ts *testServer, email string) string {
	t.Helper()

	resp := request(t, ts, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decode(t, resp, &body)
	require.Equal(t, "bearer", body.TokenType)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

// loginAs creates a user with the given role and returns it with a token.
func loginAs(t *testing.T, ts *testServer, roleName domain.RoleName) (domain.User, string) {
	t.Helper()
	u := createUser(t, ts, roleName)
	return u, login(t, ts, u.Email)
}

// resetTopics clears the editorial state shared by every test in the run.
func resetTopics(t *testing.T, ts *testServer) {
	t.Helper()
	testhelper.ResetTables(t, ts.Pool, "email_logs", "daily_topics")
	_, err := ts.Pool.Exec(context.Background(), `UPDATE auto_topics SET is_active = true`)
	require.NoError(t, err)
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

// request sends a JSON request; token may be empty. The body is closed via
// t.Cleanup.
func request(t *testing.T, ts *testServer, method, path, token string, body any, headers ...string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func detail(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decode(t, resp, &body)
	return body.Detail
}
