package usecase_test

import (
	"context"
	"strings"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso. Devuelven copias de las entidades
// para que una mutación sin Update no altere el estado guardado.

type memUserRepo struct {
	users     map[string]*entity.User // clave: username
	findCalls int
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	r := &memUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		cp := *u
		r.users[u.Username] = &cp
	}
	return r
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByUsername(username string) (*entity.User, error) {
	r.findCalls++
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) Search(_ repository.UserFilter, _, _ int) ([]*entity.User, int, error) {
	return nil, 0, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

type memCategoryRepo struct {
	byID map[string]*entity.Category
}

func newMemCategoryRepo(categories ...*entity.Category) *memCategoryRepo {
	r := &memCategoryRepo{byID: map[string]*entity.Category{}}
	for _, c := range categories {
		cp := *c
		r.byID[c.ID] = &cp
	}
	return r
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	for _, other := range r.byID {
		if strings.EqualFold(other.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.byID {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) ExistsByName(name string) (bool, error) {
	c, err := r.GetByName(name)
	return c != nil, err
}

func (r *memCategoryRepo) Search(filter repository.CategoryFilter, limit, offset int) ([]*entity.Category, int, error) {
	var all []*entity.Category
	for _, c := range r.byID {
		if filter.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.CreatedBy != "" && c.CreatedBy != filter.CreatedBy {
			continue
		}
		cp := *c
		all = append(all, &cp)
	}
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	for id, other := range r.byID {
		if id != c.ID && strings.EqualFold(other.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type memProductRepo struct {
	byID        map[string]*entity.Product
	saveAllErr  error
	saveAllSeen int
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{byID: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		r.byID[p.ID] = &cp
	}
	return r
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, int, error) {
	var all []*entity.Product
	for _, p := range r.byID {
		cp := *p
		all = append(all, &cp)
	}
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (r *memProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) SaveAll(products []*entity.Product) error {
	r.saveAllSeen++
	if r.saveAllErr != nil {
		return r.saveAllErr
	}
	for _, p := range products {
		cp := *p
		r.byID[p.ID] = &cp
	}
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// memStorage cuenta las llamadas a StoreFile para verificar que no se invoca
// con content types inválidos.
type memStorage struct {
	stored map[string][]byte
	calls  int
	err    error
}

func newMemStorage() *memStorage {
	return &memStorage{stored: map[string][]byte{}}
}

func (s *memStorage) StoreFile(fileName, contentType string, data []byte) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	name := "stored-" + fileName
	s.stored[name] = data
	return name, nil
}

func (s *memStorage) ReadFile(fileName string) ([]byte, error) {
	data, ok := s.stored[fileName]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

// memTx ejecuta el fn con los repos dados. Los fakes no son transaccionales;
// el test del SaveAll fallido verifica que el borrado no se alcanza.
type memTx struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

func (t *memTx) Run(_ context.Context, fn func(repository.CategoryRepository, repository.ProductRepository) error) error {
	return fn(t.categories, t.products)
}

// memPublisher registra los eventos publicados.
type memPublisher struct {
	topics []string
	events []interface{}
	err    error
}

func (p *memPublisher) Publish(topic string, event interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}
