package entity

// Role es el rol del principal autenticado.
type Role string

// Roles válidos emitidos por el servicio de autenticación.
const (
	RoleUser       Role = "User"
	RoleAdmin      Role = "Admin"
	RoleSuperadmin Role = "Superadmin"
)

// UserRoles son los roles con acceso a las rutas /user.
var UserRoles = []Role{RoleUser, RoleAdmin, RoleSuperadmin}

// IsAuthorized informa si role está en la lista permitida. No depende del transporte.
func IsAuthorized(role Role, allowed ...Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// IsElevated informa si el rol puede operar sobre recursos de otros usuarios (Admin/Superadmin).
func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// Principal es la identidad resuelta desde el bearer token.
type Principal struct {
	ID           string
	Role         Role
	Organisation string
	Email        string
	Name         string
}

// CanAccess informa si el principal puede leer o modificar un recurso creado por ownerID.
func (p Principal) CanAccess(ownerID string) bool {
	return p.ID == ownerID || p.Role.IsElevated()
}
