package user

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/editorial-backend/internal/domain"
)

const (
	maxEmailLen    = 255
	maxPasswordLen = 72 // bcrypt input limit, in bytes
	maxNameLen     = 100
)

// CreateUserInput holds parameters for the admin create operation.
type CreateUserInput struct {
	Email    string
	Password string
	RoleID   int64
	IsActive *bool
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEmail(errs, i.Email)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	if i.RoleID <= 0 {
		errs = append(errs, domain.FieldError{Field: "role_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput holds the admin patch. Nil fields are left unchanged and an
// empty password is ignored.
type UpdateUserInput struct {
	Email    *string
	Password *string
	RoleID   *int64
	IsActive *bool
}

// Validate validates the update user input.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.Email != nil {
		errs = validateEmail(errs, *i.Email)
	}
	if i.Password != nil && len(*i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	if i.RoleID != nil && *i.RoleID <= 0 {
		errs = append(errs, domain.FieldError{Field: "role_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds the self-service profile patch.
// ClearSMTPPassword takes precedence over SMTPPassword.
type UpdateProfileInput struct {
	FirstName         *string
	LastName          *string
	Avatar            *string
	CurrentPassword   *string
	NewPassword       *string
	SMTPPassword      *string
	ClearSMTPPassword bool
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.FirstName != nil && utf8.RuneCountInString(*i.FirstName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if i.LastName != nil && utf8.RuneCountInString(*i.LastName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}
	if i.NewPassword != nil && len(*i.NewPassword) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case utf8.RuneCountInString(email) > maxEmailLen:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !strings.Contains(email, "@"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}
