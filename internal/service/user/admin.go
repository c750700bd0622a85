package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

var (
	errUserNotFound = domain.NewError(domain.ErrNotFound, "Usuario no encontrado")
	errRoleNotFound = domain.NewError(domain.ErrNotFound, "Rol no encontrado")
)

// ListUsers returns every account ordered by id (admin only).
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}

// ListRoles returns the bootstrap roles ordered by id (admin only).
func (s *Service) ListRoles(ctx context.Context) ([]domain.Role, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListRoles: %w", err)
	}
	return roles, nil
}

// CreateUser registers a new account (admin only). New accounts are active
// unless IsActive says otherwise.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	in.Email = strings.TrimSpace(in.Email)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser hash: %w", err)
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.users.EmailExists(txCtx, in.Email, 0)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return domain.NewError(domain.ErrConflict, "Email ya registrado")
		}

		if err := s.ensureRole(txCtx, in.RoleID); err != nil {
			return err
		}

		created, err = s.users.Create(txCtx, &domain.User{
			Email:        in.Email,
			PasswordHash: hash,
			IsActive:     isActive,
			RoleID:       in.RoleID,
		})
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.NewError(domain.ErrConflict, "Email ya registrado")
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapOp("user.CreateUser", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.Int64("user_id", created.ID),
		slog.String("role", created.Role.Name.String()),
	)

	return created, nil
}

// UpdateUser applies an admin patch to an account. A patch on the caller's
// own account may not carry role_id or is_active at all, whatever the values.
func (s *Service) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error) {
	session, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		trimmed := strings.TrimSpace(*in.Email)
		in.Email = &trimmed
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if id == session.UserID() {
		if in.RoleID != nil {
			return nil, domain.NewError(domain.ErrInvalidState, "No puedes cambiar tu propio rol")
		}
		if in.IsActive != nil {
			return nil, domain.NewError(domain.ErrInvalidState, "No puedes desactivarte a ti mismo")
		}
	}

	patch := domain.UserPatch{
		Email:    in.Email,
		RoleID:   in.RoleID,
		IsActive: in.IsActive,
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := s.passwords.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateUser hash: %w", err)
		}
		patch.PasswordHash = &hash
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errUserNotFound
			}
			return fmt.Errorf("get user: %w", err)
		}

		if patch.Email != nil && *patch.Email != current.Email {
			exists, err := s.users.EmailExists(txCtx, *patch.Email, id)
			if err != nil {
				return fmt.Errorf("check email: %w", err)
			}
			if exists {
				return domain.NewError(domain.ErrConflict, "Email ya en uso")
			}
		}

		if patch.RoleID != nil {
			if err := s.ensureRole(txCtx, *patch.RoleID); err != nil {
				return err
			}
		}

		updated, err = s.users.Update(txCtx, id, patch)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.NewError(domain.ErrConflict, "Email ya en uso")
			}
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapOp("user.UpdateUser", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.Int64("user_id", id),
		slog.Int64("by_user_id", session.UserID()),
	)

	return updated, nil
}

// DeleteUser removes an account (admin only). Admins cannot delete themselves.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	session, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	if id == session.UserID() {
		return domain.NewError(domain.ErrInvalidState, "No puedes eliminar tu propia cuenta")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errUserNotFound
		}
		return fmt.Errorf("user.DeleteUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.Int64("user_id", id),
		slog.Int64("by_user_id", session.UserID()),
	)

	return nil
}

func (s *Service) ensureRole(ctx context.Context, roleID int64) error {
	if _, err := s.roles.GetByID(ctx, roleID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errRoleNotFound
		}
		return fmt.Errorf("get role: %w", err)
	}
	return nil
}

// wrapOp keeps domain errors unwrapped so their public message survives.
func wrapOp(op string, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
