package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
)

// Campos de orden aceptados por ProductRepository.List.
const (
	ProductSortName      = "name"
	ProductSortPrice     = "price"
	ProductSortCreatedAt = "created_at"
	ProductSortUpdatedAt = "updated_at"
)

// ProductFilter filtros del listado de productos. Los campos vacíos no filtran.
type ProductFilter struct {
	Search     string // nombre, sku o descripción (ILIKE)
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	InStock    bool // solo productos con existencias en alguna ubicación
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetBySKU devuelven (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateCost(ctx context.Context, productID string, cost decimal.Decimal) error
	// SoftDelete marca is_active=false. ErrNotFound si no existe.
	SoftDelete(ctx context.Context, id string) error
	// List devuelve la página pedida y el total de filas que cumplen el filtro.
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, int, error)
}
