package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

var errAutoTopicNotFound = domain.NewError(domain.ErrNotFound, "Tema automático no encontrado")

// ListAutoTopics returns every template by display order.
func (s *Service) ListAutoTopics(ctx context.Context) ([]domain.AutoTopic, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}

	autos, err := s.autos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("topic.ListAutoTopics: %w", err)
	}
	return autos, nil
}

// CreateAutoTopic adds an active template.
func (s *Service) CreateAutoTopic(ctx context.Context, in CreateAutoTopicInput) (*domain.AutoTopic, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := s.autos.Create(ctx, in.Title, in.DisplayOrder)
	if err != nil {
		return nil, fmt.Errorf("topic.CreateAutoTopic: %w", err)
	}

	s.log.InfoContext(ctx, "auto topic created", slog.Int64("auto_topic_id", created.ID))
	return created, nil
}

// UpdateAutoTopic applies a partial patch to a template.
func (s *Service) UpdateAutoTopic(ctx context.Context, id int64, in UpdateAutoTopicInput) (*domain.AutoTopic, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}

	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		in.Title = &trimmed
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.autos.Update(ctx, id, domain.AutoTopicPatch{
		Title:        in.Title,
		IsActive:     in.IsActive,
		DisplayOrder: in.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errAutoTopicNotFound
		}
		return nil, fmt.Errorf("topic.UpdateAutoTopic: %w", err)
	}
	return updated, nil
}

// DeleteAutoTopic removes a template.
func (s *Service) DeleteAutoTopic(ctx context.Context, id int64) error {
	if err := requireSession(ctx); err != nil {
		return err
	}

	if err := s.autos.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errAutoTopicNotFound
		}
		return fmt.Errorf("topic.DeleteAutoTopic: %w", err)
	}

	s.log.InfoContext(ctx, "auto topic deleted", slog.Int64("auto_topic_id", id))
	return nil
}
