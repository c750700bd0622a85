package auth

import (
	"context"
	"slices"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

type sessionKey struct{}

// WithSession stores the resolved session in the context.
func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromCtx returns the session stored by WithSession.
// The zero Session is returned for anonymous requests.
func SessionFromCtx(ctx context.Context) domain.Session {
	s, _ := ctx.Value(sessionKey{}).(domain.Session)
	return s
}

// RequireSession fails with ErrUnauthorized when no user was resolved.
func RequireSession(s domain.Session) error {
	if s.IsZero() {
		return domain.NewError(domain.ErrUnauthorized, "Not authenticated")
	}
	return nil
}

// RequireRole fails with ErrUnauthorized when no user was resolved and with
// ErrForbidden when the user's role is not among allowed.
func RequireRole(s domain.Session, allowed ...domain.RoleName) error {
	if err := RequireSession(s); err != nil {
		return err
	}
	if !slices.Contains(allowed, s.RoleName()) {
		return domain.NewError(domain.ErrForbidden, "Insufficient permissions")
	}
	return nil
}
