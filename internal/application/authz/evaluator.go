package authz

import (
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// Evaluator decide si el principal autenticado puede mutar una categoría.
// La regla es: permitido si el rol resuelto en el almacén es ADMIN, o si el
// username del principal coincide con el creador de la categoría. El rol se
// toma del registro de usuario, no del token.
type Evaluator struct {
	users repository.UserRepository
}

// NewEvaluator construye el evaluador con el puerto de usuarios.
func NewEvaluator(users repository.UserRepository) *Evaluator {
	return &Evaluator{users: users}
}

// ResolvePrincipal resuelve el username autenticado a su registro de usuario.
// Devuelve ErrUserNotFound si la identidad no corresponde a ningún usuario;
// los llamadores no deben confundirlo con ErrUnauthorized.
func (e *Evaluator) ResolvePrincipal(username string) (*entity.User, error) {
	user, err := e.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// CanModifyCategory devuelve nil si el principal puede mutar la categoría,
// ErrUnauthorized si no, y ErrUserNotFound si el principal no existe.
// Sin efectos secundarios: decisión pura sobre el estado suministrado.
func (e *Evaluator) CanModifyCategory(username string, category *entity.Category) error {
	user, err := e.ResolvePrincipal(username)
	if err != nil {
		return err
	}
	if user.Role == entity.RoleAdmin {
		return nil
	}
	if category.CreatedBy == user.Username {
		return nil
	}
	return domain.ErrUnauthorized
}
