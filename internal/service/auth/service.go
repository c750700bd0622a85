package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// passwordHasher defines the password verification needed by auth service.
type passwordHasher interface {
	Compare(hash, password string) (bool, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID int64) (string, error)
	ValidateAccessToken(token string) (int64, error)
}

// Service implements login and session resolution.
type Service struct {
	log       *slog.Logger
	users     userRepo
	passwords passwordHasher
	jwt       jwtManager
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	passwords passwordHasher,
	jwt jwtManager,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		passwords: passwords,
		jwt:       jwt,
	}
}
