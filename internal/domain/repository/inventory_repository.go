package repository

import (
	"context"

	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
)

// InventoryFilter filtros del listado de inventario. Status usa entity.StockStatus*.
type InventoryFilter struct {
	ProductID  string
	LocationID string
	Status     string
	Limit      int
	Offset     int
}

// InventoryRepository define el puerto para el stock por producto+ubicación (DIP).
type InventoryRepository interface {
	Get(ctx context.Context, productID, locationID string) (*entity.InventoryLine, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene efecto dentro de una tx.
	GetForUpdate(ctx context.Context, productID, locationID string) (*entity.InventoryLine, error)
	Upsert(ctx context.Context, line *entity.InventoryLine) error
	List(ctx context.Context, f InventoryFilter) ([]*entity.InventoryLine, int, error)
	// ListLowStock devuelve las líneas con quantity <= reorder_point, mayor déficit primero.
	// locationID vacío = todas las ubicaciones.
	ListLowStock(ctx context.Context, locationID string) ([]*entity.InventoryLine, error)
}

// InventoryMovementRepository define el puerto de persistencia para movimientos de inventario.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryMovement, error)
}
