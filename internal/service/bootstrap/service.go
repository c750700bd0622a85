// Package bootstrap seeds the reference rows every deployment needs.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// Seed is a named row with its display order.
type Seed struct {
	Name  string
	Order int
}

// FixedCategories are the topic categories that always exist, in digest order.
var FixedCategories = []Seed{
	{"COMUNES", 1},
	{"NACIONAL", 2},
	{"MADRID", 3},
	{"ANDALUCIA", 4},
	{"BALEARES", 5},
	{"CANARIAS", 6},
	{"CV/MURCIA", 7},
	{"ASTURIAS/GALICIA", 8},
	{"EXTREMADURA/ZAMORA", 9},
	{"CATALUNA/ARAGON", 10},
	{"INTERNACIONAL", 11},
	{"ECONOMIA", 12},
	{"DEPORTES", 13},
	{"REVISTAS", 14},
}

// DefaultAutoTopics are created once; editors may change or delete them.
var DefaultAutoTopics = []Seed{
	{"Calendario Laboral/Escolar 2025 en ZONA", 1},
	{"Cuando es el próximo puente en ZONA", 2},
	{"Tiempo en ZONA", 3},
}

type roleRepo interface {
	EnsureExists(ctx context.Context, names ...domain.RoleName) error
}

type categoryRepo interface {
	UpsertFixed(ctx context.Context, name string, displayOrder int) error
}

type autoRepo interface {
	EnsureTitle(ctx context.Context, title string, displayOrder int) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service seeds roles, fixed categories and default auto topics.
type Service struct {
	log        *slog.Logger
	roles      roleRepo
	categories categoryRepo
	autos      autoRepo
	tx         txManager
}

// NewService creates a new bootstrap service instance.
func NewService(logger *slog.Logger, roles roleRepo, categories categoryRepo, autos autoRepo, tx txManager) *Service {
	return &Service{
		log:        logger.With("service", "bootstrap"),
		roles:      roles,
		categories: categories,
		autos:      autos,
		tx:         tx,
	}
}

// Run seeds everything in one transaction. It is safe to run on every start:
// fixed categories are upserted, auto topics are only added when their title
// is absent.
func (s *Service) Run(ctx context.Context) error {
	var added int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.roles.EnsureExists(txCtx, domain.AllRoles()...); err != nil {
			return fmt.Errorf("roles: %w", err)
		}

		for _, c := range FixedCategories {
			if err := s.categories.UpsertFixed(txCtx, c.Name, c.Order); err != nil {
				return fmt.Errorf("fixed categories: %w", err)
			}
		}

		for _, a := range DefaultAutoTopics {
			inserted, err := s.autos.EnsureTitle(txCtx, a.Name, a.Order)
			if err != nil {
				return fmt.Errorf("auto topics: %w", err)
			}
			if inserted {
				added++
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bootstrap.Run: %w", err)
	}

	s.log.InfoContext(ctx, "bootstrap complete",
		slog.Int("fixed_categories", len(FixedCategories)),
		slog.Int("auto_topics_added", added),
	)
	return nil
}
