package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.FileRepository = (*FileRepo)(nil)

// FileRepo implementación del puerto FileRepository sobre PostgreSQL.
// Solo metadatos: el contenido vive en el storage.
type FileRepo struct {
	db querier
}

// NewFileRepository construye el adaptador de persistencia para metadatos de archivos.
func NewFileRepository(db querier) *FileRepo {
	return &FileRepo{db: db}
}

// Create persiste los metadatos de un archivo almacenado.
func (r *FileRepo) Create(file *entity.StoredFile) error {
	query := `
		INSERT INTO stored_files (id, file_name, original_name, content_type, size, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		file.ID, file.FileName, file.OriginalName, file.ContentType, file.Size, file.UploadedBy, file.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stored file: %w", err)
	}
	return nil
}

// GetByFileName obtiene los metadatos por nombre almacenado. Devuelve nil si no existe.
func (r *FileRepo) GetByFileName(fileName string) (*entity.StoredFile, error) {
	query := `
		SELECT id, file_name, original_name, content_type, size, uploaded_by, created_at
		FROM stored_files WHERE file_name = $1`
	var f entity.StoredFile
	err := r.db.QueryRow(context.Background(), query, fileName).Scan(
		&f.ID, &f.FileName, &f.OriginalName, &f.ContentType, &f.Size, &f.UploadedBy, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stored file: %w", err)
	}
	return &f, nil
}

// ListByUploader lista los archivos subidos por un usuario, más recientes primero.
func (r *FileRepo) ListByUploader(username string, limit, offset int) ([]*entity.StoredFile, error) {
	query := `
		SELECT id, file_name, original_name, content_type, size, uploaded_by, created_at
		FROM stored_files WHERE uploaded_by = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, username, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stored files: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoredFile
	for rows.Next() {
		var f entity.StoredFile
		if err := rows.Scan(&f.ID, &f.FileName, &f.OriginalName, &f.ContentType, &f.Size, &f.UploadedBy, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stored file: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
