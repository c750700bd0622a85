package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

var errTopicNotFound = domain.NewError(domain.ErrNotFound, "Tema no encontrado")

// ListDailyTopics returns every daily topic, newest first, with its category.
func (s *Service) ListDailyTopics(ctx context.Context) ([]domain.DailyTopic, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}

	topics, err := s.daily.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("topic.ListDailyTopics: %w", err)
	}
	return topics, nil
}

// CreateDailyTopic adds a draft topic.
func (s *Service) CreateDailyTopic(ctx context.Context, in CreateDailyTopicInput) (*domain.DailyTopic, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.CategoryID != nil && *in.CategoryID == 0 {
		in.CategoryID = nil
	}

	var created *domain.DailyTopic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if in.CategoryID != nil {
			if err := s.ensureCategory(txCtx, *in.CategoryID); err != nil {
				return err
			}
		}

		var err error
		created, err = s.daily.Create(txCtx, &domain.DailyTopic{
			Title:          in.Title,
			URL:            in.URL,
			IncludeURL:     in.IncludeURL,
			Observation:    in.Observation,
			CategoryID:     in.CategoryID,
			OriginalSource: in.OriginalSource,
			OriginalURL:    in.OriginalURL,
			IsDraft:        true,
		})
		if err != nil {
			return fmt.Errorf("create topic: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapOp("topic.CreateDailyTopic", err)
	}

	s.log.InfoContext(ctx, "daily topic created", slog.Int64("topic_id", created.ID))
	return created, nil
}

// UpdateDailyTopic applies a partial patch to a topic.
func (s *Service) UpdateDailyTopic(ctx context.Context, id int64, in UpdateDailyTopicInput) (*domain.DailyTopic, error) {
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

	var updated *domain.DailyTopic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.daily.GetByID(txCtx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errTopicNotFound
			}
			return fmt.Errorf("get topic: %w", err)
		}

		if in.CategoryID != nil {
			if err := s.ensureCategory(txCtx, *in.CategoryID); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.daily.Update(txCtx, id, domain.DailyTopicPatch{
			Title:       in.Title,
			URL:         in.URL,
			IncludeURL:  in.IncludeURL,
			Observation: in.Observation,
			CategoryID:  in.CategoryID,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errTopicNotFound
			}
			return fmt.Errorf("update topic: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapOp("topic.UpdateDailyTopic", err)
	}

	return updated, nil
}

// DeleteDailyTopic hard-deletes a topic, draft or sent.
func (s *Service) DeleteDailyTopic(ctx context.Context, id int64) error {
	if err := requireSession(ctx); err != nil {
		return err
	}

	if err := s.daily.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errTopicNotFound
		}
		return fmt.Errorf("topic.DeleteDailyTopic: %w", err)
	}

	s.log.InfoContext(ctx, "daily topic deleted", slog.Int64("topic_id", id))
	return nil
}
