package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// UserFilter filtro para la búsqueda de usuarios (administración).
type UserFilter struct {
	Username string // subcadena, sin distinguir mayúsculas
	Role     string
	Enabled  *bool
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	Search(filter UserFilter, limit, offset int) ([]*entity.User, int, error)
	Update(user *entity.User) error
}
