package entity

import "time"

// UncategorizedName nombre de la categoría centinela. Se siembra al arrancar
// y recibe los productos de cualquier categoría que se elimine. Su ausencia
// en tiempo de borrado es una violación de los datos semilla del despliegue.
const UncategorizedName = "Sin categoría"

// Category representa una categoría del catálogo de productos.
// Name es único comparando sin distinguir mayúsculas; CreatedBy registra el
// username del creador y no cambia nunca.
type Category struct {
	ID          string
	Name        string
	Description string
	ImageName   string // thumbnail en el storage, vacío si no tiene
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsProtected indica si la categoría es la centinela (no actualizable ni eliminable).
func (c *Category) IsProtected() bool {
	return c.Name == UncategorizedName
}
