// Package sportevent implements the sports feed repository using PostgreSQL.
// The feed is replaced wholesale on every ingest.
package sportevent

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/editorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const (
	deleteAllEventsSQL = `DELETE FROM sport_events`

	listEventsSQL = `
SELECT id, day_name, event_date, deporte, hora, competicion, evento, canal, created_at
FROM sport_events
ORDER BY hora, id`
)

// Repo provides sport event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new sport event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns every event ordered by hora ascending.
func (r *Repo) List(ctx context.Context) ([]domain.SportEvent, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listEventsSQL)
	if err != nil {
		return nil, fmt.Errorf("list sport events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteAll removes every event and returns the number of rows deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteAllEventsSQL)
	if err != nil {
		return 0, fmt.Errorf("delete sport events: %w", err)
	}
	return tag.RowsAffected(), nil
}

// InsertBatch inserts events with a single multi-row INSERT.
func (r *Repo) InsertBatch(ctx context.Context, events []domain.SportEvent) error {
	if len(events) == 0 {
		return nil
	}

	b := postgres.Builder().
		Insert("sport_events").
		Columns("day_name", "event_date", "deporte", "hora", "competicion", "evento", "canal")
	for _, e := range events {
		b = b.Values(e.DayName, e.EventDate, e.Sport, e.Time, e.Competition, e.Event, e.Channel)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build insert sport events: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "sport_event", 0)
	}
	return nil
}

func scanEvents(rows pgx.Rows) ([]domain.SportEvent, error) {
	events := make([]domain.SportEvent, 0)
	for rows.Next() {
		var e domain.SportEvent
		if err := rows.Scan(
			&e.ID, &e.DayName, &e.EventDate, &e.Sport, &e.Time,
			&e.Competition, &e.Event, &e.Channel, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sport event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sport events: %w", err)
	}
	return events, nil
}
