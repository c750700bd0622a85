package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/domain"
	"github.com/heartmarshall/editorial-backend/pkg/ctxutil"
)

type sessionResolver interface {
	ResolveSession(ctx context.Context, token string) (domain.Session, error)
}

// Auth resolves a bearer token into a session stored in the request context.
// Requests without a token pass through anonymously; whether an operation
// needs a session is decided by the service it calls. A token that does not
// resolve is rejected with 401.
func Auth(resolver sessionResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := resolver.ResolveSession(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					msg, _ := domain.PublicMessage(err)
					w.Header().Set("WWW-Authenticate", "Bearer")
					writeDetail(w, http.StatusUnauthorized, msg)
					return
				}
				logger.ErrorContext(r.Context(), "resolve session",
					slog.String("error", err.Error()),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				writeDetail(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := auth.WithSession(r.Context(), session)
			ctx = ctxutil.WithUserID(ctx, session.UserID())
			reportUser(ctx, session.UserID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
