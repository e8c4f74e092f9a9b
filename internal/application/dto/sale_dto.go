package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	validation.SaleInput
}

// UpdateSaleStatusRequest cambio de estado; los campos vacíos conservan su valor.
type UpdateSaleStatusRequest struct {
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Notes         *string `json:"notes"`
}

// SaleListRequest filtros de GET /api/sales. From/To en formato 2006-01-02.
type SaleListRequest struct {
	PageRequest
	CustomerID    string `query:"customer_id"`
	Status        string `query:"status"`
	PaymentStatus string `query:"payment_status"`
	From          string `query:"from"`
	To            string `query:"to"`
}

// SaleItemResponse línea de venta.
type SaleItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	LocationID    string             `json:"location_id,omitempty"`
	Discount      decimal.Decimal    `json:"discount"`
	TaxRate       decimal.Decimal    `json:"tax_rate"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	DiscountTotal decimal.Decimal    `json:"discount_total"`
	TaxTotal      decimal.Decimal    `json:"tax_total"`
	Total         decimal.Decimal    `json:"total"`
	Notes         string             `json:"notes"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	CreatedBy     string             `json:"created_by,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
