package dto

import "time"

// CreateCategoryRequest datos para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCategoryRequest datos para actualizar nombre y descripción.
type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryFilterRequest filtro de búsqueda (query params).
type CategoryFilterRequest struct {
	Name          string     `query:"name"`
	CreatedBy     string     `query:"created_by"`
	CreatedAfter  *time.Time `query:"created_after"`
	CreatedBefore *time.Time `query:"created_before"`
}

// CategoryResponse representación pública de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageName   string    `json:"image_name,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse página de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ThumbnailResponse referencia del thumbnail almacenado.
type ThumbnailResponse struct {
	ImageName string `json:"image_name"`
}
