package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin     = "admin"
	RolBodeguero = "bodeguero"
	RolVendedor  = "vendedor"
)

// Estados de un usuario.
const (
	UsuarioActivo     = "active"
	UsuarioInactivo   = "inactive"
	UsuarioSuspendido = "suspended"
)

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // admin, bodeguero, vendedor
	Estado       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RolValido indica si el rol pertenece al catálogo.
func RolValido(rol string) bool {
	switch rol {
	case RolAdmin, RolBodeguero, RolVendedor:
		return true
	}
	return false
}
