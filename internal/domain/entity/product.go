package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// CategoryID nunca está vacío: todo producto pertenece a exactamente una
// categoría viva; al eliminar su categoría se reasigna a la centinela.
type Product struct {
	ID          string
	CategoryID  string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
