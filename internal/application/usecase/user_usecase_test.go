package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

type userFixture struct {
	uc        *usecase.UserUseCase
	users     *memUserRepo
	storage   *memStorage
	publisher *memPublisher
}

func newUserFixture(users ...*entity.User) *userFixture {
	repo := newMemUserRepo(users...)
	storage := newMemStorage()
	publisher := &memPublisher{}
	return &userFixture{
		uc:        usecase.NewUserUseCase(repo, storage, publisher, logger.Nop()),
		users:     repo,
		storage:   storage,
		publisher: publisher,
	}
}

func registeredUser(username, password string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &entity.User{
		ID:           "u-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Email:        username + "@tienda.local",
		Role:         entity.RoleGuest,
		Enabled:      true,
	}
}

func TestRegister_CreaGuestYPublicaEvento(t *testing.T) {
	fx := newUserFixture()

	out, err := fx.uc.Register(dto.RegisterRequest{
		Username: "bob",
		Password: "secreto123",
		Email:    "bob@tienda.local",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGuest, out.Role, "el registro público siempre crea GUEST")
	assert.True(t, out.Enabled)

	require.Len(t, fx.publisher.events, 1)
	assert.Equal(t, domain.WelcomeEmailTopic, fx.publisher.topics[0])
	evt, ok := fx.publisher.events[0].(domain.UserCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "bob", evt.Username)
	assert.Equal(t, "bob@tienda.local", evt.Email)
}

// Un fallo al publicar el evento no deshace el registro.
func TestRegister_FalloDePublicacionNoDeshaceElRegistro(t *testing.T) {
	fx := newUserFixture()
	fx.publisher.err = assert.AnError

	out, err := fx.uc.Register(dto.RegisterRequest{Username: "bob", Password: "secreto123", Email: "bob@tienda.local"})
	require.NoError(t, err)
	assert.Equal(t, "bob", out.Username)

	stored, err := fx.users.FindByUsername("bob")
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	fx := newUserFixture(registeredUser("bob", "secreto123"))

	_, err := fx.uc.Register(dto.RegisterRequest{Username: "bob", Password: "otra", Email: "otro@tienda.local"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, fx.publisher.events, "un registro fallido no debe publicar eventos")
}

func TestGetByUsername_UsaElCache(t *testing.T) {
	fx := newUserFixture(registeredUser("bob", "secreto123"))

	first, err := fx.uc.GetByUsername("bob")
	require.NoError(t, err)
	callsAfterFirst := fx.users.findCalls

	second, err := fx.uc.GetByUsername("bob")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, callsAfterFirst, fx.users.findCalls,
		"la segunda lectura debe salir del cache sin tocar el repositorio")
}

func TestGetByUsername_Inexistente(t *testing.T) {
	fx := newUserFixture()

	_, err := fx.uc.GetByUsername("fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Tras actualizar el perfil, la lectura siguiente no sirve datos viejos.
func TestUpdateMyInfo_InvalidaElCache(t *testing.T) {
	fx := newUserFixture(registeredUser("bob", "secreto123"))
	_, err := fx.uc.GetMyInfo("bob") // calienta el cache
	require.NoError(t, err)

	phone := "+57 300 000 0000"
	_, err = fx.uc.UpdateMyInfo("bob", dto.UpdateUserRequest{Phone: &phone})
	require.NoError(t, err)

	got, err := fx.uc.GetMyInfo("bob")
	require.NoError(t, err)
	assert.Equal(t, phone, got.Phone)
}

func TestUpdateMyInfo_CamposNilConservanValor(t *testing.T) {
	fx := newUserFixture(registeredUser("bob", "secreto123"))

	first := "Roberto"
	out, err := fx.uc.UpdateMyInfo("bob", dto.UpdateUserRequest{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Roberto", out.FirstName)
	assert.Equal(t, "bob@tienda.local", out.Email, "los campos no enviados se conservan")
}

func TestChangeMyPassword_ContrasenaActualIncorrecta(t *testing.T) {
	fx := newUserFixture(registeredUser("bob", "secreto123"))

	err := fx.uc.ChangeMyPassword("bob", "equivocada", "nueva456")
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
}

func TestChangeMyPassword_NuevaIgualALaActual(t *testing.T) {
	fx := newUserFixture(registeredUser("bob", "secreto123"))

	err := fx.uc.ChangeMyPassword("bob", "secreto123", "secreto123")
	assert.ErrorIs(t, err, domain.ErrSamePassword)
}

func TestChangeMyPassword_Correcto(t *testing.T) {
	fx := newUserFixture(registeredUser("bob", "secreto123"))

	require.NoError(t, fx.uc.ChangeMyPassword("bob", "secreto123", "nueva456"))

	stored, err := fx.users.FindByUsername("bob")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva456")))
}

func TestSetMyAvatar_ContentTypeInvalidoNoTocaStorage(t *testing.T) {
	fx := newUserFixture(registeredUser("bob", "secreto123"))

	_, err := fx.uc.SetMyAvatar("bob", dto.FileUpload{
		FileName:    "cv.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, fx.storage.calls)
}

func TestSetMyAvatar_GuardaYActualizaPerfil(t *testing.T) {
	fx := newUserFixture(registeredUser("bob", "secreto123"))

	name, err := fx.uc.SetMyAvatar("bob", dto.FileUpload{
		FileName:    "cara.jpg",
		ContentType: "image/jpeg",
		Data:        []byte{0xff, 0xd8},
	})
	require.NoError(t, err)
	assert.Equal(t, "stored-cara.jpg", name)

	got, err := fx.uc.GetMyInfo("bob")
	require.NoError(t, err)
	assert.Equal(t, name, got.AvatarName)
}

func TestDisableMyAccount_DeshabilitaSinBorrar(t *testing.T) {
	fx := newUserFixture(registeredUser("bob", "secreto123"))

	require.NoError(t, fx.uc.DisableMyAccount("bob"))

	stored, err := fx.users.FindByUsername("bob")
	require.NoError(t, err)
	require.NotNil(t, stored, "la cuenta no se borra")
	assert.False(t, stored.Enabled)
}
