package entity

import "time"

// UserRole rol de un usuario del sistema. Conjunto cerrado.
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
)

// Valid reporta si el rol pertenece al conjunto permitido.
func (r UserRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin:
		return true
	}
	return false
}

// ParseUserRole convierte un string externo en UserRole.
func ParseUserRole(s string) (UserRole, bool) {
	r := UserRole(s)
	return r, r.Valid()
}

// User usuario del sistema (staff del taller).
type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	PasswordHash string // bcrypt, nunca expuesto hacia afuera
	Role         UserRole
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanCreateUsers gate de autorización: solo super_admin crea usuarios.
func (u *User) CanCreateUsers() bool {
	return u.Role == RoleSuperAdmin
}

// CanManageUsers gate de autorización: solo super_admin gestiona usuarios
// ajenos (listar, actualizar, cambiar estado, borrar).
func (u *User) CanManageUsers() bool {
	return u.Role == RoleSuperAdmin
}

// IsSuperAdmin reporta si el usuario tiene el rol inmutable super_admin.
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
