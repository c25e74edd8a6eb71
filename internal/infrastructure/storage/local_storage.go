package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

var _ usecase.FileStorage = (*LocalStorage)(nil)

// LocalStorage guarda archivos en un directorio local. Cada archivo recibe
// un nombre uuid + extensión original; ese nombre es la referencia que se
// persiste en las entidades.
type LocalStorage struct {
	dir string
}

// NewLocalStorage crea el directorio si no existe y construye el storage.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de storage: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// StoreFile guarda el contenido y devuelve el nombre almacenado.
func (s *LocalStorage) StoreFile(fileName, contentType string, data []byte) (string, error) {
	stored := uuid.New().String() + filepath.Ext(fileName)
	if err := os.WriteFile(filepath.Join(s.dir, stored), data, 0o644); err != nil {
		return "", fmt.Errorf("guardar archivo: %w", err)
	}
	return stored, nil
}

// ReadFile devuelve el contenido de un archivo almacenado.
// El nombre no puede contener componentes de ruta.
func (s *LocalStorage) ReadFile(fileName string) ([]byte, error) {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return nil, domain.ErrInvalidInput
	}
	data, err := os.ReadFile(filepath.Join(s.dir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	return data, nil
}
