package usecase

import (
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// AdminUseCase gestión de usuarios por administración: búsqueda, consulta,
// cambio de rol y habilitar/deshabilitar cuentas. Todas las rutas que lo
// exponen exigen rol ADMIN.
type AdminUseCase struct {
	users repository.UserRepository
	log   *logger.Logger
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(users repository.UserRepository, log *logger.Logger) *AdminUseCase {
	return &AdminUseCase{users: users, log: log}
}

// Search busca usuarios con filtro y paginación.
func (uc *AdminUseCase) Search(filter dto.UserFilterRequest, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.users.Search(repository.UserFilter{
		Username: filter.Username,
		Role:     filter.Role,
		Enabled:  filter.Enabled,
	}, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID obtiene un usuario por ID. ErrUserNotFound si no existe.
func (uc *AdminUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdateRole cambia el rol de un usuario. El rol debe pertenecer al conjunto fijo.
func (uc *AdminUseCase) UpdateRole(id, role string) (*dto.UserResponse, error) {
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", user.Username).Str("role", role).Msg("rol de usuario actualizado")
	return toUserResponse(user), nil
}

// SetEnabled habilita o deshabilita la cuenta de un usuario.
func (uc *AdminUseCase) SetEnabled(id string, enabled bool) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Enabled = enabled
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", user.Username).Bool("enabled", enabled).Msg("estado de cuenta actualizado")
	return toUserResponse(user), nil
}
