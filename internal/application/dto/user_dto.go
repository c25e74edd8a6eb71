package dto

import "time"

// RegisterRequest datos de registro público de un usuario (rol GUEST).
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UpdateUserRequest actualización parcial del perfil propio.
// Los campos nil conservan el valor actual; el rol no se toca por esta vía.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

// ChangePasswordRequest cambio de contraseña del propio usuario.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UpdateRoleRequest cambio de rol (solo administración).
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// SetEnabledRequest habilita o deshabilita una cuenta (administración).
type SetEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// UserFilterRequest filtro de búsqueda de usuarios (administración).
type UserFilterRequest struct {
	Username string `query:"username"`
	Role     string `query:"role"`
	Enabled  *bool  `query:"enabled"`
}

// UserResponse representación pública de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Phone      string    `json:"phone"`
	AvatarName string    `json:"avatar_name,omitempty"`
	Role       string    `json:"role"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserListResponse página de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AvatarResponse referencia del avatar almacenado.
type AvatarResponse struct {
	AvatarName string `json:"avatar_name"`
}
