package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto (tela, insumo) del catálogo.
// Stock no vive aquí: se maneja por ubicación en InventoryLine.
type Product struct {
	ID          string
	Name        string
	Description string
	SKU         string // único en el catálogo
	Barcode     string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal
	CategoryID  string
	IsActive    bool // false = eliminado lógicamente
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
