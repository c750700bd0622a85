package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/editorial-backend/internal/auth"
	"github.com/heartmarshall/editorial-backend/internal/domain"
)

// UpdateMyProfile updates the caller's own profile. Changing the password
// requires the current one.
func (s *Service) UpdateMyProfile(ctx context.Context, in UpdateProfileInput) (*domain.User, error) {
	session := auth.SessionFromCtx(ctx)
	if err := auth.RequireSession(session); err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	patch := domain.UserPatch{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Avatar:            in.Avatar,
		SMTPPassword:      in.SMTPPassword,
		ClearSMTPPassword: in.ClearSMTPPassword,
	}

	if in.NewPassword != nil && *in.NewPassword != "" {
		if in.CurrentPassword == nil || *in.CurrentPassword == "" {
			return nil, domain.NewError(domain.ErrUnauthorized, "Contraseña actual incorrecta")
		}

		current, err := s.users.GetByID(ctx, session.UserID())
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, errUserNotFound
			}
			return nil, fmt.Errorf("user.UpdateMyProfile get user: %w", err)
		}

		ok, err := s.passwords.Compare(current.PasswordHash, *in.CurrentPassword)
		if err != nil || !ok {
			return nil, domain.NewError(domain.ErrUnauthorized, "Contraseña actual incorrecta")
		}

		hash, err := s.passwords.Hash(*in.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateMyProfile hash: %w", err)
		}
		patch.PasswordHash = &hash
	}

	updated, err := s.users.Update(ctx, session.UserID(), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("user.UpdateMyProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.Int64("user_id", session.UserID()),
		slog.Bool("password_changed", patch.PasswordHash != nil),
	)

	return updated, nil
}

// SetMySMTPPassword stores the caller's own relay credential. An empty value
// clears it.
func (s *Service) SetMySMTPPassword(ctx context.Context, smtpPassword string) (*domain.User, error) {
	session := auth.SessionFromCtx(ctx)
	if err := auth.RequireSession(session); err != nil {
		return nil, err
	}

	patch := domain.UserPatch{ClearSMTPPassword: smtpPassword == ""}
	if smtpPassword != "" {
		patch.SMTPPassword = &smtpPassword
	}

	updated, err := s.users.Update(ctx, session.UserID(), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("user.SetMySMTPPassword: %w", err)
	}

	s.log.InfoContext(ctx, "smtp password updated",
		slog.Int64("user_id", session.UserID()),
		slog.Bool("cleared", patch.ClearSMTPPassword),
	)

	return updated, nil
}
