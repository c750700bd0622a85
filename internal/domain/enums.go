package domain

// RoleName identifies one of the fixed roles created at bootstrap.
type RoleName string

const (
	RoleAdmin       RoleName = "admin"
	RoleResponsable RoleName = "responsable"
	RoleUsuario     RoleName = "usuario"
)

func (r RoleName) String() string { return string(r) }

func (r RoleName) IsValid() bool {
	switch r {
	case RoleAdmin, RoleResponsable, RoleUsuario:
		return true
	}
	return false
}

// IsAdmin returns true if the role is admin.
func (r RoleName) IsAdmin() bool { return r == RoleAdmin }

// AllRoles lists the bootstrap roles in creation order.
func AllRoles() []RoleName {
	return []RoleName{RoleAdmin, RoleResponsable, RoleUsuario}
}
