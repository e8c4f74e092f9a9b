package repository

import (
	"context"
	"time"

	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
)

// SaleFilter filtros del listado de ventas.
type SaleFilter struct {
	CustomerID    string
	Status        string
	PaymentStatus string
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	// Create inserta cabecera y líneas.
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByID devuelve la venta con sus líneas, o (nil, nil).
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List devuelve cabeceras (sin líneas) y el total.
	List(ctx context.Context, f SaleFilter) ([]*entity.Sale, int, error)
	// UpdateStatus actualiza estado, estado de pago y notas. ErrNotFound si no existe.
	UpdateStatus(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id string) error
}
