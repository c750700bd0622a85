package topic

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context) ([]domain.TopicCategory, error)
	GetByID(ctx context.Context, id int64) (*domain.TopicCategory, error)
	GetByName(ctx context.Context, name string) (*domain.TopicCategory, error)
	Create(ctx context.Context, name string, displayOrder int) (*domain.TopicCategory, error)
	Update(ctx context.Context, id int64, name string, displayOrder int) (*domain.TopicCategory, error)
	Delete(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
}

type autoRepo interface {
	List(ctx context.Context) ([]domain.AutoTopic, error)
	ListActive(ctx context.Context) ([]domain.AutoTopic, error)
	Create(ctx context.Context, title string, displayOrder int) (*domain.AutoTopic, error)
	Update(ctx context.Context, id int64, p domain.AutoTopicPatch) (*domain.AutoTopic, error)
	Delete(ctx context.Context, id int64) error
}

type dailyRepo interface {
	List(ctx context.Context) ([]domain.DailyTopic, error)
	GetByID(ctx context.Context, id int64) (*domain.DailyTopic, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.DailyTopic, error)
	Create(ctx context.Context, t *domain.DailyTopic) (*domain.DailyTopic, error)
	CreateDrafts(ctx context.Context, titles []string, categoryID *int64) ([]int64, error)
	Update(ctx context.Context, id int64, p domain.DailyTopicPatch) (*domain.DailyTopic, error)
	Delete(ctx context.Context, id int64) error
	DetachCategory(ctx context.Context, categoryID int64) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages topic categories, auto topic templates and daily topics.
// Every operation requires a signed-in user of any role.
type Service struct {
	log        *slog.Logger
	categories categoryRepo
	autos      autoRepo
	daily      dailyRepo
	tx         txManager
}

// NewService creates a new topic service instance.
func NewService(
	logger *slog.Logger,
	categories categoryRepo,
	autos autoRepo,
	daily dailyRepo,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "topic"),
		categories: categories,
		autos:      autos,
		daily:      daily,
		tx:         tx,
	}
}

func requireSession(ctx context.Context) error {
	return auth.RequireSession(auth.SessionFromCtx(ctx))
}
