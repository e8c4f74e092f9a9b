package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/serranotex/serrano-tex-ims/internal/application/ports"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/inventory"
)

// Movement un cambio de stock a aplicar dentro de una transacción.
type Movement struct {
	ProductID   string
	LocationID  string
	Type        string // entity.MovementType*
	Delta       decimal.Decimal
	UnitCost    *decimal.Decimal // solo entradas: recalcula el costo promedio del producto
	Reason      string
	ReferenceID string
	UserID      string
	At          time.Time
}

// ApplyDelta bloquea la línea (SELECT FOR UPDATE), suma Delta y registra el movimiento.
// La cantidad nunca queda negativa: en ese caso devuelve ErrInsufficientStock sin escribir.
// Debe llamarse con repos de una transacción (TxRunner.Run).
func ApplyDelta(ctx context.Context, repos ports.TxRepos, m Movement) (*entity.InventoryLine, error) {
	line, err := repos.Inventory.GetForUpdate(ctx, m.ProductID, m.LocationID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		line = &entity.InventoryLine{
			ID:         uuid.New().String(),
			ProductID:  m.ProductID,
			LocationID: m.LocationID,
		}
	}
	newQty := line.Quantity.Add(m.Delta)
	if newQty.IsNegative() {
		return nil, domain.ErrInsufficientStock
	}

	if m.Delta.IsPositive() && m.UnitCost != nil {
		product, err := repos.Products.GetByID(ctx, m.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		newCost := inventory.WeightedAverageCost(line.Quantity, product.Cost, m.Delta, *m.UnitCost)
		if err := repos.Products.UpdateCost(ctx, m.ProductID, newCost); err != nil {
			return nil, err
		}
	}

	line.Quantity = newQty
	line.UpdatedAt = m.At
	if err := repos.Inventory.Upsert(ctx, line); err != nil {
		return nil, err
	}
	mov := &entity.InventoryMovement{
		ID:          uuid.New().String(),
		ProductID:   m.ProductID,
		LocationID:  m.LocationID,
		Type:        m.Type,
		Quantity:    m.Delta,
		UnitCost:    m.UnitCost,
		Reason:      m.Reason,
		ReferenceID: m.ReferenceID,
		CreatedBy:   m.UserID,
		CreatedAt:   m.At,
	}
	if err := repos.Movements.Create(ctx, mov); err != nil {
		return nil, err
	}
	return line, nil
}
