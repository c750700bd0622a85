package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int64, p domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type roleRepo interface {
	List(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id int64) (domain.Role, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account administration and self-service profile updates.
type Service struct {
	log       *slog.Logger
	users     userRepo
	roles     roleRepo
	passwords passwordHasher
	tx        txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	roles roleRepo,
	passwords passwordHasher,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "user"),
		users:     users,
		roles:     roles,
		passwords: passwords,
		tx:        tx,
	}
}

func requireAdmin(ctx context.Context) (domain.Session, error) {
	session := auth.SessionFromCtx(ctx)
	if err := auth.RequireRole(session, domain.RoleAdmin); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}
