package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

func TestAdminGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewAdminUseCase(newMemUserRepo(), logger.Nop())

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAdminUpdateRole_PromueveAManager(t *testing.T) {
	repo := newMemUserRepo(registeredUser("bob", "secreto123"))
	uc := usecase.NewAdminUseCase(repo, logger.Nop())

	out, err := uc.UpdateRole("u-bob", entity.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, out.Role)

	stored, err := repo.FindByUsername("bob")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, stored.Role)
}

func TestAdminUpdateRole_RolInvalido(t *testing.T) {
	repo := newMemUserRepo(registeredUser("bob", "secreto123"))
	uc := usecase.NewAdminUseCase(repo, logger.Nop())

	_, err := uc.UpdateRole("u-bob", "SUPERUSER")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdminSetEnabled_DeshabilitaYRehabilita(t *testing.T) {
	repo := newMemUserRepo(registeredUser("bob", "secreto123"))
	uc := usecase.NewAdminUseCase(repo, logger.Nop())

	out, err := uc.SetEnabled("u-bob", false)
	require.NoError(t, err)
	assert.False(t, out.Enabled)

	out, err = uc.SetEnabled("u-bob", true)
	require.NoError(t, err)
	assert.True(t, out.Enabled)
}
