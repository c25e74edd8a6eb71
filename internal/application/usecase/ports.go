package usecase

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// FileStorage puerto hacia el almacenamiento de archivos. Los casos de uso
// validan el content type antes de invocarlo.
type FileStorage interface {
	// StoreFile guarda el contenido y devuelve el nombre con el que quedó
	// almacenado (la referencia que se persiste en la entidad).
	StoreFile(fileName, contentType string, data []byte) (string, error)
	// ReadFile devuelve el contenido de un archivo ya almacenado.
	ReadFile(fileName string) ([]byte, error)
}

// CategoryTxRunner ejecuta fn con repos atados a una única transacción del
// almacén. La reasignación de productos y el borrado de la categoría deben
// confirmarse o deshacerse juntos.
type CategoryTxRunner interface {
	Run(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		products repository.ProductRepository,
	) error) error
}

// EventPublisher publica eventos de dominio en un topic.
type EventPublisher interface {
	Publish(topic string, event interface{}) error
}
