package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

var errCategoryNotFound = domain.NewError(domain.ErrNotFound, "Categoría no encontrada")

// ListCategories returns domain categories alphabetically. Any signed-in user
// may read them.
func (s *Service) ListCategories(ctx context.Context) ([]domain.DomainCategory, error) {
	if err := auth.RequireSession(auth.SessionFromCtx(ctx)); err != nil {
		return nil, err
	}

	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListCategories: %w", err)
	}
	return cats, nil
}

// CreateCategory adds a domain category (admin only).
func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.DomainCategory, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	var created *domain.DomainCategory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.categories.NameExists(txCtx, name, 0)
		if err != nil {
			return fmt.Errorf("check name: %w", err)
		}
		if exists {
			return domain.NewError(domain.ErrConflict, "Categoría ya existe")
		}

		created, err = s.categories.Create(txCtx, name)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.NewError(domain.ErrConflict, "Categoría ya existe")
			}
			return fmt.Errorf("create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapOp("catalog.CreateCategory", err)
	}

	s.log.InfoContext(ctx, "domain category created", slog.Int64("category_id", created.ID))
	return created, nil
}

// UpdateCategory renames a domain category (admin only).
func (s *Service) UpdateCategory(ctx context.Context, id int64, name string) (*domain.DomainCategory, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	var updated *domain.DomainCategory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.categories.GetByID(txCtx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errCategoryNotFound
			}
			return fmt.Errorf("get category: %w", err)
		}

		exists, err := s.categories.NameExists(txCtx, name, id)
		if err != nil {
			return fmt.Errorf("check name: %w", err)
		}
		if exists {
			return domain.NewError(domain.ErrConflict, "Nombre ya en uso")
		}

		updated, err = s.categories.Update(txCtx, id, name)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.NewError(domain.ErrConflict, "Nombre ya en uso")
			}
			return fmt.Errorf("update category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapOp("catalog.UpdateCategory", err)
	}

	return updated, nil
}

// DeleteCategory removes a domain category that no domain references (admin only).
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.categories.GetByID(txCtx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errCategoryNotFound
			}
			return fmt.Errorf("get category: %w", err)
		}

		used, err := s.categories.HasDomains(txCtx, id)
		if err != nil {
			return fmt.Errorf("check domains: %w", err)
		}
		if used {
			return domain.NewError(domain.ErrInvalidState, "La categoría tiene dominios asociados")
		}

		if err := s.categories.Delete(txCtx, id); err != nil {
			if errors.Is(err, domain.ErrInvalidState) {
				return domain.NewError(domain.ErrInvalidState, "La categoría tiene dominios asociados")
			}
			if errors.Is(err, domain.ErrNotFound) {
				return errCategoryNotFound
			}
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return wrapOp("catalog.DeleteCategory", err)
	}

	s.log.InfoContext(ctx, "domain category deleted", slog.Int64("category_id", id))
	return nil
}

func wrapOp(op string, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
