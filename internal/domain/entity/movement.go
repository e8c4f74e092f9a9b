package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeAdjustment  = "adjustment"
	MovementTypeTransferIn  = "transfer_in"
	MovementTypeTransferOut = "transfer_out"
	MovementTypeSale        = "sale"
)

// InventoryMovement registro inmutable de un cambio de stock. Quantity lleva signo.
type InventoryMovement struct {
	ID          string
	ProductID   string
	LocationID  string
	Type        string
	Quantity    decimal.Decimal
	UnitCost    *decimal.Decimal // solo en entradas con costo conocido
	Reason      string
	ReferenceID string // venta o transferencia que originó el movimiento
	CreatedBy   string
	CreatedAt   time.Time
}
