package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados de la cantidad y el punto de reorden.
const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

// InventoryLine representa el stock de un producto en una ubicación.
// ReorderPoint y MaxStock son opcionales (nil = sin definir).
type InventoryLine struct {
	ID               string
	ProductID        string
	LocationID       string
	Quantity         decimal.Decimal
	ReservedQuantity decimal.Decimal
	ReorderPoint     *decimal.Decimal
	MaxStock         *decimal.Decimal
	UpdatedAt        time.Time
}

// Available cantidad no reservada.
func (l *InventoryLine) Available() decimal.Decimal {
	return l.Quantity.Sub(l.ReservedQuantity)
}

// Status: sin existencias, bajo el punto de reorden (inclusive) o con stock.
func (l *InventoryLine) Status() string {
	switch {
	case !l.Quantity.IsPositive():
		return StockStatusOutOfStock
	case l.ReorderPoint != nil && l.Quantity.LessThanOrEqual(*l.ReorderPoint):
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}
