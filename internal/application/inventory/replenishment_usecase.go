package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
)

var idealFactor = decimal.NewFromFloat(1.5)

// ReplenishmentUseCase genera la lista de reposición a partir de las líneas en o bajo su punto de reorden.
type ReplenishmentUseCase struct {
	repo     repository.InventoryRepository
	products repository.ProductRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(repo repository.InventoryRepository, products repository.ProductRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{repo: repo, products: products}
}

// LowStock devuelve las líneas con stock bajo y la cantidad sugerida de pedido:
// hasta max_stock si está definido, si no hasta 1.5 veces el punto de reorden.
// Orden: mayor déficit primero. locationID vacío = todas las ubicaciones.
func (uc *ReplenishmentUseCase) LowStock(ctx context.Context, locationID string) ([]dto.LowStockItemDTO, error) {
	lines, err := uc.repo.ListLowStock(ctx, locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(lines))
	for _, l := range lines {
		if l.ReorderPoint == nil {
			continue
		}
		item := dto.LowStockItemDTO{
			InventoryResponse: *ToInventoryResponse(l),
			Deficit:           l.ReorderPoint.Sub(l.Quantity),
		}
		ideal := l.ReorderPoint.Mul(idealFactor)
		if l.MaxStock != nil {
			ideal = *l.MaxStock
		}
		item.SuggestedOrderQty = decimal.Max(ideal.Sub(l.Quantity), decimal.Zero)

		p, err := uc.products.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			item.SKU = p.SKU
			item.ProductName = p.Name
			item.EstimatedOrderCost = item.SuggestedOrderQty.Mul(p.Cost).Round(2)
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deficit.GreaterThan(out[j].Deficit)
	})
	return out, nil
}
