package sports

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

type eventRepo interface {
	List(ctx context.Context) ([]domain.SportEvent, error)
	DeleteAll(ctx context.Context) (int64, error)
	InsertBatch(ctx context.Context, events []domain.SportEvent) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service owns the sports schedule pushed by the external feed.
type Service struct {
	log    *slog.Logger
	events eventRepo
	tx     txManager
	apiKey string
}

// NewService creates a sports service. An empty apiKey rejects every batch.
func NewService(logger *slog.Logger, events eventRepo, tx txManager, apiKey string) *Service {
	return &Service{
		log:    logger.With("service", "sports"),
		events: events,
		tx:     tx,
		apiKey: apiKey,
	}
}
