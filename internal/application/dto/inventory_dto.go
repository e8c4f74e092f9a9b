package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

// InventoryRequest entrada de PUT /api/inventory (crea o reemplaza la línea producto+ubicación).
type InventoryRequest struct {
	validation.InventoryInput
}

// AdjustStockRequest ajuste por delta con signo. UnitCost solo aplica a entradas (delta > 0).
type AdjustStockRequest struct {
	ProductID  string           `json:"product_id" validate:"required,uuid"`
	LocationID string           `json:"location_id" validate:"required,uuid"`
	Delta      decimal.Decimal  `json:"delta"`
	Reason     string           `json:"reason" validate:"required,max=200"`
	UnitCost   *decimal.Decimal `json:"unit_cost"`
}

// TransferStockRequest traslado de cantidad entre dos ubicaciones.
type TransferStockRequest struct {
	ProductID      string          `json:"product_id" validate:"required,uuid"`
	FromLocationID string          `json:"from_location_id" validate:"required,uuid"`
	ToLocationID   string          `json:"to_location_id" validate:"required,uuid,nefield=FromLocationID"`
	Quantity       decimal.Decimal `json:"quantity"`
	Reason         string          `json:"reason" validate:"max=200"`
}

// InventoryListRequest filtros de GET /api/inventory.
type InventoryListRequest struct {
	PageRequest
	ProductID  string `query:"product_id"`
	LocationID string `query:"location_id"`
	Status     string `query:"status"` // in_stock | low_stock | out_of_stock
}

// InventoryResponse salida de una línea de inventario con su estado derivado.
type InventoryResponse struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"product_id"`
	LocationID       string           `json:"location_id"`
	Quantity         decimal.Decimal  `json:"quantity"`
	ReservedQuantity decimal.Decimal  `json:"reserved_quantity"`
	Available        decimal.Decimal  `json:"available"`
	ReorderPoint     *decimal.Decimal `json:"reorder_point"`
	MaxStock         *decimal.Decimal `json:"max_stock"`
	Status           string           `json:"status"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// InventoryListResponse lista paginada de inventario.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// TransferResponse estado de ambas líneas tras el traslado.
type TransferResponse struct {
	From InventoryResponse `json:"from"`
	To   InventoryResponse `json:"to"`
}

// MovementResponse salida de un movimiento de inventario.
type MovementResponse struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"product_id"`
	LocationID  string           `json:"location_id"`
	Type        string           `json:"type"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
	Reason      string           `json:"reason"`
	ReferenceID string           `json:"reference_id,omitempty"`
	CreatedBy   string           `json:"created_by,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// LowStockItemDTO línea bajo el punto de reorden con la sugerencia de reposición.
type LowStockItemDTO struct {
	InventoryResponse
	SKU                string          `json:"sku"`
	ProductName        string          `json:"product_name"`
	Deficit            decimal.Decimal `json:"deficit"`
	SuggestedOrderQty  decimal.Decimal `json:"suggested_order_qty"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"`
}
