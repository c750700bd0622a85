package sports

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// ReplaceEvents swaps the whole schedule for the given batch and returns the
// stored events ordered by time. The caller authenticates with the shared
// feed key instead of a session.
func (s *Service) ReplaceEvents(ctx context.Context, apiKey string, events []EventInput) ([]domain.SportEvent, error) {
	if !s.validKey(apiKey) {
		s.log.WarnContext(ctx, "sports batch rejected", slog.Bool("key_present", apiKey != ""))
		return nil, domain.NewError(domain.ErrForbidden, "Invalid API key")
	}

	if err := validateEvents(events); err != nil {
		return nil, err
	}

	batch := make([]domain.SportEvent, len(events))
	for i, e := range events {
		batch[i] = e.toDomain()
	}

	var (
		stored  []domain.SportEvent
		removed int64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		removed, err = s.events.DeleteAll(txCtx)
		if err != nil {
			return fmt.Errorf("delete events: %w", err)
		}

		if err := s.events.InsertBatch(txCtx, batch); err != nil {
			return fmt.Errorf("insert events: %w", err)
		}

		stored, err = s.events.List(txCtx)
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sports.ReplaceEvents: %w", err)
	}

	s.log.InfoContext(ctx, "sports schedule replaced",
		slog.Int64("removed", removed),
		slog.Int("inserted", len(batch)),
	)

	return stored, nil
}

// ListEvents returns the current schedule ordered by time.
func (s *Service) ListEvents(ctx context.Context) ([]domain.SportEvent, error) {
	if err := auth.RequireSession(auth.SessionFromCtx(ctx)); err != nil {
		return nil, err
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("sports.ListEvents: %w", err)
	}
	return events, nil
}

func (s *Service) validKey(got string) bool {
	if s.apiKey == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(s.apiKey)) == 1
}
