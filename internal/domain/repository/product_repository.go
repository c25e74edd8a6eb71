package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, int, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// SaveAll persiste en bloque la reasignación de categoría de varios
	// productos (usado al eliminar una categoría).
	SaveAll(products []*entity.Product) error
	Delete(id string) error
}
