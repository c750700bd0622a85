package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

var errCategoryNotFound = domain.NewError(domain.ErrNotFound, "Categoría no encontrada")

// ListCategories returns temporary categories first, then fixed ones, each
// group by display order and name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.TopicCategory, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}

	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("topic.ListCategories: %w", err)
	}
	return cats, nil
}

// CreateCategory adds a temporary topic category.
func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*domain.TopicCategory, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var created *domain.TopicCategory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.categories.NameExists(txCtx, in.Name, 0)
		if err != nil {
			return fmt.Errorf("check name: %w", err)
		}
		if exists {
			return domain.NewError(domain.ErrConflict, "Categoría ya existe")
		}

		created, err = s.categories.Create(txCtx, in.Name, in.DisplayOrder)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.NewError(domain.ErrConflict, "Categoría ya existe")
			}
			return fmt.Errorf("create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapOp("topic.CreateCategory", err)
	}

	s.log.InfoContext(ctx, "topic category created", slog.Int64("category_id", created.ID))
	return created, nil
}

// UpdateCategory renames and reorders a topic category.
func (s *Service) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (*domain.TopicCategory, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.TopicCategory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.categories.GetByID(txCtx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errCategoryNotFound
			}
			return fmt.Errorf("get category: %w", err)
		}

		exists, err := s.categories.NameExists(txCtx, in.Name, id)
		if err != nil {
			return fmt.Errorf("check name: %w", err)
		}
		if exists {
			return domain.NewError(domain.ErrConflict, "Nombre ya en uso")
		}

		updated, err = s.categories.Update(txCtx, id, in.Name, in.DisplayOrder)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.NewError(domain.ErrConflict, "Nombre ya en uso")
			}
			return fmt.Errorf("update category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapOp("topic.UpdateCategory", err)
	}

	return updated, nil
}

// DeleteCategory removes a temporary category. Its topics stay, uncategorised.
// Fixed categories cannot be deleted.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := requireSession(ctx); err != nil {
		return err
	}

	var detached int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cat, err := s.categories.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errCategoryNotFound
			}
			return fmt.Errorf("get category: %w", err)
		}
		if cat.IsFixed {
			return domain.NewError(domain.ErrForbidden, "Las categorías fijas no se pueden eliminar")
		}

		detached, err = s.daily.DetachCategory(txCtx, id)
		if err != nil {
			return fmt.Errorf("detach topics: %w", err)
		}

		if err := s.categories.Delete(txCtx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errCategoryNotFound
			}
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return wrapOp("topic.DeleteCategory", err)
	}

	s.log.InfoContext(ctx, "topic category deleted",
		slog.Int64("category_id", id),
		slog.Int64("detached_topics", detached),
	)
	return nil
}

// ensureCategory fails with the public not-found error when id does not exist.
func (s *Service) ensureCategory(ctx context.Context, id int64) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errCategoryNotFound
		}
		return fmt.Errorf("get category: %w", err)
	}
	return nil
}

func wrapOp(op string, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
