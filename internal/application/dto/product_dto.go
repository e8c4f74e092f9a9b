package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

// CreateProductRequest entrada para crear un producto (mismos campos que valida ValidateProduct).
type CreateProductRequest struct {
	validation.ProductInput
}

// UpdateProductRequest actualización parcial: los campos ausentes conservan su valor.
type UpdateProductRequest struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	SKU         *string           `json:"sku"`
	Price       validation.Number `json:"price"`
	Cost        validation.Number `json:"cost"`
	CategoryID  *string           `json:"category_id"`
	Barcode     *string           `json:"barcode"`
}

// ProductListRequest filtros de GET /api/products.
type ProductListRequest struct {
	PageRequest
	Search     string           `query:"search"`
	CategoryID string           `query:"category"`
	MinPrice   *decimal.Decimal `query:"-"`
	MaxPrice   *decimal.Decimal `query:"-"`
	InStock    bool             `query:"in_stock"`
	SortBy     string           `query:"sort_by"`
	SortOrder  string           `query:"sort_order"` // asc | desc
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Barcode     string          `json:"barcode"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	CategoryID  string          `json:"category_id"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CategoryRequest entrada para crear una categoría.
type CategoryRequest struct {
	ParentID string `json:"parent_id" validate:"omitempty,uuid"`
	Name     string `json:"name" validate:"required,max=100"`
	Code     string `json:"code" validate:"required,max=30"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Name     string `json:"name"`
	Code     string `json:"code"`
}

// LocationRequest entrada para crear una ubicación.
type LocationRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=200"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
