package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// FileUseCase subida y descarga de archivos: contenido en el storage,
// metadatos en el almacén relacional.
type FileUseCase struct {
	files   repository.FileRepository
	storage FileStorage
}

// NewFileUseCase construye el caso de uso.
func NewFileUseCase(files repository.FileRepository, storage FileStorage) *FileUseCase {
	return &FileUseCase{files: files, storage: storage}
}

// Upload guarda el archivo y registra sus metadatos.
func (uc *FileUseCase) Upload(username string, file dto.FileUpload) (*dto.FileResponse, error) {
	if file.FileName == "" || len(file.Data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	fileName, err := uc.storage.StoreFile(file.FileName, file.ContentType, file.Data)
	if err != nil {
		return nil, err
	}
	meta := &entity.StoredFile{
		ID:           uuid.New().String(),
		FileName:     fileName,
		OriginalName: file.FileName,
		ContentType:  file.ContentType,
		Size:         int64(len(file.Data)),
		UploadedBy:   username,
		CreatedAt:    time.Now(),
	}
	if err := uc.files.Create(meta); err != nil {
		return nil, err
	}
	return toFileResponse(meta), nil
}

// ListMine lista los archivos subidos por el principal, más recientes primero.
func (uc *FileUseCase) ListMine(username string, page dto.PageRequest) ([]dto.FileResponse, error) {
	page.DefaultPage()
	list, err := uc.files.ListByUploader(username, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FileResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFileResponse(f))
	}
	return items, nil
}

// Download devuelve los metadatos y el contenido de un archivo almacenado.
// ErrNotFound si la referencia no existe.
func (uc *FileUseCase) Download(fileName string) (*dto.FileResponse, []byte, error) {
	meta, err := uc.files.GetByFileName(fileName)
	if err != nil {
		return nil, nil, err
	}
	if meta == nil {
		return nil, nil, domain.ErrNotFound
	}
	data, err := uc.storage.ReadFile(meta.FileName)
	if err != nil {
		return nil, nil, err
	}
	return toFileResponse(meta), data, nil
}

func toFileResponse(f *entity.StoredFile) *dto.FileResponse {
	if f == nil {
		return nil
	}
	return &dto.FileResponse{
		FileName:     f.FileName,
		OriginalName: f.OriginalName,
		ContentType:  f.ContentType,
		Size:         f.Size,
		UploadedBy:   f.UploadedBy,
		CreatedAt:    f.CreatedAt,
	}
}
