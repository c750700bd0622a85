package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context) ([]domain.DomainCategory, error)
	GetByID(ctx context.Context, id int64) (*domain.DomainCategory, error)
	Create(ctx context.Context, name string) (*domain.DomainCategory, error)
	Update(ctx context.Context, id int64, name string) (*domain.DomainCategory, error)
	Delete(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	HasDomains(ctx context.Context, id int64) (bool, error)
}

type domainRepo interface {
	List(ctx context.Context) ([]domain.Domain, error)
	GetByID(ctx context.Context, id int64) (*domain.Domain, error)
	Create(ctx context.Context, d *domain.Domain) (*domain.Domain, error)
	Update(ctx context.Context, id int64, p domain.DomainPatch) (*domain.Domain, error)
	Delete(ctx context.Context, id int64) error
}

type workbookWriter interface {
	WriteDomains(domains []domain.Domain) ([]byte, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages domain categories and the domain catalog.
type Service struct {
	log        *slog.Logger
	categories categoryRepo
	domains    domainRepo
	workbook   workbookWriter
	tx         txManager
}

// NewService creates a new catalog service instance.
func NewService(
	logger *slog.Logger,
	categories categoryRepo,
	domains domainRepo,
	workbook workbookWriter,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "catalog"),
		categories: categories,
		domains:    domains,
		workbook:   workbook,
		tx:         tx,
	}
}

func requireAdmin(ctx context.Context) error {
	return auth.RequireRole(auth.SessionFromCtx(ctx), domain.RoleAdmin)
}
