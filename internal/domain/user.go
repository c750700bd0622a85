package domain

import "time"

// Role is one of the fixed authorization roles.
type Role struct {
	ID   int64
	Name RoleName
}

// User represents a backoffice account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	// SMTPPassword is the user's own relay credential used when sending the digest.
	SMTPPassword *string
	FirstName    *string
	LastName     *string
	Avatar       *string
	IsActive     bool
	RoleID       int64
	Role         Role
	CreatedAt    time.Time
}

// HasSMTPPassword reports whether a per-user relay credential is stored.
func (u User) HasSMTPPassword() bool {
	return u.SMTPPassword != nil && *u.SMTPPassword != ""
}

// Session is the identity resolved from a bearer token.
type Session struct {
	User User
}

// IsZero returns true when no user was resolved.
func (s Session) IsZero() bool {
	return s.User.ID == 0
}

// UserID returns the session user's id.
func (s Session) UserID() int64 { return s.User.ID }

// RoleName returns the session user's role.
func (s Session) RoleName() RoleName { return s.User.Role.Name }

// UserPatch lists the user columns to change. Nil fields are left as is.
// ClearSMTPPassword takes precedence over SMTPPassword.
type UserPatch struct {
	Email             *string
	PasswordHash      *string
	RoleID            *int64
	IsActive          *bool
	FirstName         *string
	LastName          *string
	Avatar            *string
	SMTPPassword      *string
	ClearSMTPPassword bool
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.PasswordHash == nil && p.RoleID == nil && p.IsActive == nil &&
		p.FirstName == nil && p.LastName == nil && p.Avatar == nil &&
		p.SMTPPassword == nil && !p.ClearSMTPPassword
}
