package repository

import (
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CategoryFilter filtro componible para la búsqueda de categorías.
// Los campos vacíos/nil no filtran.
type CategoryFilter struct {
	Name          string // subcadena, sin distinguir mayúsculas
	CreatedBy     string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las comparaciones por nombre son sin distinguir mayúsculas; la unicidad
// real la garantiza el constraint único del almacén (el chequeo previo del
// caso de uso solo produce un error más amable).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	ExistsByName(name string) (bool, error)
	// Search devuelve la página de resultados y el total de coincidencias.
	// Orden por defecto determinista: nombre ascendente.
	Search(filter CategoryFilter, limit, offset int) ([]*entity.Category, int, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
