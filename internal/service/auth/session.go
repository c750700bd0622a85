package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// ResolveSession turns a bearer token into a session. Invalid, expired or
// malformed tokens and unknown or inactive users all yield ErrUnauthorized.
func (s *Service) ResolveSession(ctx context.Context, token string) (domain.Session, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return domain.Session{}, domain.NewError(domain.ErrUnauthorized, "Invalid token")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, domain.NewError(domain.ErrUnauthorized, "User not found")
		}
		return domain.Session{}, fmt.Errorf("auth.ResolveSession get user: %w", err)
	}
	if !user.IsActive {
		return domain.Session{}, domain.NewError(domain.ErrUnauthorized, "User not found")
	}

	return domain.Session{User: *user}, nil
}

// Me returns the user of the current session.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	session := auth.SessionFromCtx(ctx)
	if err := auth.RequireSession(session); err != nil {
		return nil, err
	}
	u := session.User
	return &u, nil
}
