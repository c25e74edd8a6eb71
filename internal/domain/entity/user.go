package entity

import "time"

// Roles válidos para User. El conjunto es fijo: no se crean roles dinámicos.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleGuest   = "GUEST"
)

// ValidRole indica si role pertenece al conjunto fijo de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleGuest:
		return true
	}
	return false
}

// User representa un usuario del sistema (el principal autenticado).
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	AvatarName   string // nombre del archivo en el storage, vacío si no tiene
	Role         string // ADMIN, MANAGER, GUEST
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
