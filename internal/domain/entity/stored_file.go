package entity

import "time"

// StoredFile metadatos de un archivo persistido en el storage.
// FileName es el nombre con el que quedó guardado (uuid + extensión) y sirve
// como referencia desde categorías (thumbnail) y usuarios (avatar).
type StoredFile struct {
	ID           string
	FileName     string
	OriginalName string
	ContentType  string
	Size         int64
	UploadedBy   string // username del que subió el archivo
	CreatedAt    time.Time
}
