package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// userCacheTTL vida máxima de una entrada del cache de perfil.
const userCacheTTL = 5 * time.Minute

// UserUseCase registro y gestión del propio perfil. El registro es público:
// todo usuario nuevo entra con rol GUEST y habilitado, y dispara el evento
// de bienvenida hacia el servicio de notificaciones.
type UserUseCase struct {
	users   repository.UserRepository
	storage FileStorage
	events  EventPublisher
	cache   *userCache
	log     *logger.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, storage FileStorage, events EventPublisher, log *logger.Logger) *UserUseCase {
	return &UserUseCase{
		users:   users,
		storage: storage,
		events:  events,
		cache:   newUserCache(userCacheTTL),
		log:     log,
	}
}

// Register crea un usuario con rol GUEST y publica UserCreatedEvent.
// Devuelve ErrDuplicate si el username ya existe (el constraint único del
// almacén cubre la carrera del chequeo previo).
func (uc *UserUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         entity.RoleGuest,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	// El registro ya está confirmado: un fallo al publicar no lo deshace,
	// el usuario simplemente no recibe el correo de bienvenida.
	if err := uc.events.Publish(domain.WelcomeEmailTopic, domain.UserCreatedEvent{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}); err != nil {
		uc.log.Warn().Err(err).Str("username", user.Username).Msg("no se pudo publicar el evento de bienvenida")
	}
	uc.log.Info().Str("username", user.Username).Msg("usuario registrado")
	return toUserResponse(user), nil
}

// GetByUsername obtiene la proyección pública de un usuario, pasando por el
// cache de perfil. ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByUsername(username string) (*dto.UserResponse, error) {
	if cached := uc.cache.get(username); cached != nil {
		return cached, nil
	}
	user, err := uc.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(user)
	uc.cache.set(username, resp)
	return resp, nil
}

// GetMyInfo devuelve el perfil del principal autenticado.
func (uc *UserUseCase) GetMyInfo(username string) (*dto.UserResponse, error) {
	return uc.GetByUsername(username)
}

// UpdateMyInfo actualiza parcialmente el propio perfil e invalida el cache.
// El rol no se modifica por esta vía.
func (uc *UserUseCase) UpdateMyInfo(username string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.resolve(username)
	if err != nil {
		return nil, err
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	uc.cache.invalidate(username)
	uc.log.Info().Str("username", username).Msg("perfil actualizado")
	return toUserResponse(user), nil
}

// ChangeMyPassword cambia la contraseña del principal. La contraseña vieja
// debe coincidir y la nueva debe ser distinta.
func (uc *UserUseCase) ChangeMyPassword(username, oldPassword, newPassword string) error {
	user, err := uc.resolve(username)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	if oldPassword == newPassword {
		return domain.ErrSamePassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return err
	}
	uc.cache.invalidate(username)
	uc.log.Info().Str("username", username).Msg("contraseña cambiada")
	return nil
}

// SetMyAvatar valida que el archivo sea una imagen, lo guarda en el storage
// y persiste la referencia en el perfil. El storage no se invoca con un
// content type inválido.
func (uc *UserUseCase) SetMyAvatar(username string, file dto.FileUpload) (string, error) {
	user, err := uc.resolve(username)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return "", domain.ErrInvalidInput
	}
	fileName, err := uc.storage.StoreFile(file.FileName, file.ContentType, file.Data)
	if err != nil {
		return "", err
	}
	user.AvatarName = fileName
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return "", err
	}
	uc.cache.invalidate(username)
	return fileName, nil
}

// DisableMyAccount deshabilita la propia cuenta. La cuenta no se borra;
// solo deja de poder autenticarse.
func (uc *UserUseCase) DisableMyAccount(username string) error {
	user, err := uc.resolve(username)
	if err != nil {
		return err
	}
	user.Enabled = false
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return err
	}
	uc.cache.invalidate(username)
	uc.log.Info().Str("username", username).Msg("cuenta deshabilitada por el propio usuario")
	return nil
}

func (uc *UserUseCase) resolve(username string) (*entity.User, error) {
	user, err := uc.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Phone:      u.Phone,
		AvatarName: u.AvatarName,
		Role:       u.Role,
		Enabled:    u.Enabled,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
