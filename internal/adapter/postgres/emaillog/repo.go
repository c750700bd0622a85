// Package emaillog implements the append-only digest log using PostgreSQL.
package emaillog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/editorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const (
	appendLogSQL = `
INSERT INTO email_logs (sent_at, sender_id, sender_email, recipients, subject, html_body, topic_count)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	listLogsSQL = `
SELECT id, sent_at, sender_id, sender_email, recipients, subject, html_body, topic_count
FROM email_logs
ORDER BY sent_at DESC, id DESC
LIMIT $1 OFFSET $2`

	countLogsSQL = `SELECT count(*) FROM email_logs`
)

// Repo provides email log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new email log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append stores a delivered digest. Recipients are kept as a JSON array.
func (r *Repo) Append(ctx context.Context, l *domain.EmailLog) (*domain.EmailLog, error) {
	recipients, err := json.Marshal(l.Recipients)
	if err != nil {
		return nil, fmt.Errorf("encode recipients: %w", err)
	}

	out := *l
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, appendLogSQL,
		l.SentAt, l.SenderID, l.SenderEmail, string(recipients), l.Subject, l.HTMLBody, l.TopicCount,
	).Scan(&out.ID)
	if err != nil {
		return nil, postgres.MapError(err, "email_log", 0)
	}
	return &out, nil
}

// List returns a page of logs, newest first, and the total count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.EmailLog, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countLogsSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count email logs: %w", err)
	}

	rows, err := q.Query(ctx, listLogsSQL, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list email logs: %w", err)
	}
	defer rows.Close()

	logs, err := scanLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func scanLogs(rows pgx.Rows) ([]domain.EmailLog, error) {
	logs := make([]domain.EmailLog, 0)
	for rows.Next() {
		var (
			l          domain.EmailLog
			recipients string
		)
		if err := rows.Scan(
			&l.ID, &l.SentAt, &l.SenderID, &l.SenderEmail, &recipients,
			&l.Subject, &l.HTMLBody, &l.TopicCount,
		); err != nil {
			return nil, fmt.Errorf("scan email log: %w", err)
		}
		if err := json.Unmarshal([]byte(recipients), &l.Recipients); err != nil {
			return nil, fmt.Errorf("decode recipients of email log %d: %w", l.ID, err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate email logs: %w", err)
	}
	return logs, nil
}
