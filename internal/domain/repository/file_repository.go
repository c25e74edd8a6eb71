package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// FileRepository define el puerto de persistencia para metadatos de archivos (DIP).
type FileRepository interface {
	Create(file *entity.StoredFile) error
	GetByFileName(fileName string) (*entity.StoredFile, error)
	ListByUploader(username string, limit, offset int) ([]*entity.StoredFile, error)
}
