package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const (
	msgBadCredentials = "Credenciales incorrectas"
	msgInactiveUser   = "Usuario inactivo"
)

// Login authenticates a user with email + password and issues an access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewError(domain.ErrUnauthorized, msgBadCredentials)
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	ok, err := s.passwords.Compare(user.PasswordHash, input.Password)
	if err != nil {
		// A malformed stored hash is reported as bad credentials, not as a 500.
		s.log.WarnContext(ctx, "stored password hash unusable",
			slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
		return nil, domain.NewError(domain.ErrUnauthorized, msgBadCredentials)
	}
	if !ok {
		return nil, domain.NewError(domain.ErrUnauthorized, msgBadCredentials)
	}

	if !user.IsActive {
		return nil, domain.NewError(domain.ErrForbidden, msgInactiveUser)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return &LoginResult{AccessToken: token, TokenType: TokenType}, nil
}
