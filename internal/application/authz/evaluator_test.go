package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/authz"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// fakeUserRepo repositorio de usuarios en memoria para los tests.
type fakeUserRepo struct {
	users map[string]*entity.User // clave: username
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.Username] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}
func (r *fakeUserRepo) Search(_ repository.UserFilter, _, _ int) ([]*entity.User, int, error) {
	return nil, 0, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.Username] = u; return nil }

func categoryOwnedBy(username string) *entity.Category {
	return &entity.Category{ID: "cat-1", Name: "Libros", CreatedBy: username}
}

// El admin puede mutar cualquier categoría aunque no sea el creador.
func TestCanModifyCategory_AdminSiemprePermitido(t *testing.T) {
	repo := newFakeUserRepo(
		&entity.User{ID: "u1", Username: "carol", Role: entity.RoleAdmin},
	)
	eval := authz.NewEvaluator(repo)

	err := eval.CanModifyCategory("carol", categoryOwnedBy("bob"))
	assert.NoError(t, err, "ADMIN debe poder mutar categorías de otros")
}

// El creador puede mutar su propia categoría sin ser admin.
func TestCanModifyCategory_CreadorPermitido(t *testing.T) {
	repo := newFakeUserRepo(
		&entity.User{ID: "u2", Username: "bob", Role: entity.RoleManager},
	)
	eval := authz.NewEvaluator(repo)

	err := eval.CanModifyCategory("bob", categoryOwnedBy("bob"))
	assert.NoError(t, err, "el creador debe poder mutar su categoría")
}

// Un principal que no es admin ni creador recibe ErrUnauthorized.
func TestCanModifyCategory_NoCreadorNoAdminDenegado(t *testing.T) {
	repo := newFakeUserRepo(
		&entity.User{ID: "u3", Username: "alice", Role: entity.RoleManager},
	)
	eval := authz.NewEvaluator(repo)

	err := eval.CanModifyCategory("alice", categoryOwnedBy("bob"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Un principal desconocido produce ErrUserNotFound, distinto de ErrUnauthorized.
func TestCanModifyCategory_PrincipalDesconocido(t *testing.T) {
	eval := authz.NewEvaluator(newFakeUserRepo())

	err := eval.CanModifyCategory("fantasma", categoryOwnedBy("bob"))
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized,
		"principal inexistente no debe confundirse con autorización denegada")
}

func TestResolvePrincipal_Existente(t *testing.T) {
	repo := newFakeUserRepo(
		&entity.User{ID: "u2", Username: "bob", Role: entity.RoleManager},
	)
	eval := authz.NewEvaluator(repo)

	user, err := eval.ResolvePrincipal("bob")
	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
}

func TestResolvePrincipal_Inexistente(t *testing.T) {
	eval := authz.NewEvaluator(newFakeUserRepo())

	_, err := eval.ResolvePrincipal("fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
