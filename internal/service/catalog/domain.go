package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

var errDomainNotFound = domain.NewError(domain.ErrNotFound, "Dominio no encontrado")

// ListDomains returns the catalog alphabetically with categories (admin only).
func (s *Service) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	domains, err := s.domains.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListDomains: %w", err)
	}
	return domains, nil
}

// CreateDomain adds a catalog entry under an existing category (admin only).
func (s *Service) CreateDomain(ctx context.Context, in CreateDomainInput) (*domain.Domain, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.FullURL = strings.TrimSpace(in.FullURL)
	in.Host = strings.TrimSpace(in.Host)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Domain
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureCategory(txCtx, in.CategoryID); err != nil {
			return err
		}

		var err error
		created, err = s.domains.Create(txCtx, &domain.Domain{
			Name:       in.Name,
			FullURL:    in.FullURL,
			Host:       in.Host,
			CategoryID: in.CategoryID,
		})
		if err != nil {
			return fmt.Errorf("create domain: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapOp("catalog.CreateDomain", err)
	}

	s.log.InfoContext(ctx, "domain created",
		slog.Int64("domain_id", created.ID),
		slog.Int64("category_id", created.CategoryID),
	)
	return created, nil
}

// UpdateDomain applies a partial patch to a catalog entry (admin only).
func (s *Service) UpdateDomain(ctx context.Context, id int64, in UpdateDomainInput) (*domain.Domain, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Domain
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.domains.GetByID(txCtx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errDomainNotFound
			}
			return fmt.Errorf("get domain: %w", err)
		}

		if in.CategoryID != nil {
			if err := s.ensureCategory(txCtx, *in.CategoryID); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.domains.Update(txCtx, id, in.patch())
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errDomainNotFound
			}
			return fmt.Errorf("update domain: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapOp("catalog.UpdateDomain", err)
	}

	return updated, nil
}

// DeleteDomain hard-deletes a catalog entry (admin only).
func (s *Service) DeleteDomain(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := s.domains.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errDomainNotFound
		}
		return fmt.Errorf("catalog.DeleteDomain: %w", err)
	}

	s.log.InfoContext(ctx, "domain deleted", slog.Int64("domain_id", id))
	return nil
}

// ExportDomains renders the whole catalog as an XLSX workbook (admin only).
func (s *Service) ExportDomains(ctx context.Context) ([]byte, error) {
	domains, err := s.ListDomains(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.workbook.WriteDomains(domains)
	if err != nil {
		return nil, fmt.Errorf("catalog.ExportDomains: %w", err)
	}
	return data, nil
}

func (s *Service) ensureCategory(ctx context.Context, id int64) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errCategoryNotFound
		}
		return fmt.Errorf("get category: %w", err)
	}
	return nil
}
