package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// ApplyAutoTopics expands every active template into a new draft daily topic
// in the COMUNES category (uncategorised when COMUNES is missing). It returns
// exactly the created topics ordered by id. Calling it twice creates two sets.
func (s *Service) ApplyAutoTopics(ctx context.Context) ([]domain.DailyTopic, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}

	var created []domain.DailyTopic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var categoryID *int64
		common, err := s.categories.GetByName(txCtx, domain.CommonCategoryName)
		switch {
		case err == nil:
			categoryID = &common.ID
		case errors.Is(err, domain.ErrNotFound):
		default:
			return fmt.Errorf("get common category: %w", err)
		}

		autos, err := s.autos.ListActive(txCtx)
		if err != nil {
			return fmt.Errorf("list active auto topics: %w", err)
		}
		if len(autos) == 0 {
			created = []domain.DailyTopic{}
			return nil
		}

		titles := make([]string, len(autos))
		for i, a := range autos {
			titles[i] = a.Title
		}

		ids, err := s.daily.CreateDrafts(txCtx, titles, categoryID)
		if err != nil {
			return fmt.Errorf("create drafts: %w", err)
		}

		created, err = s.daily.GetByIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("read created drafts: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("topic.ApplyAutoTopics: %w", err)
	}

	s.log.InfoContext(ctx, "auto topics applied", slog.Int("created", len(created)))
	return created, nil
}
