// Package inventory contiene los casos de uso del stock por ubicación: carga, ajustes, traslados
// y reposición.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/application/ports"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

// Mensajes de las comprobaciones contra la base de datos.
const (
	MsgProductNotFound  = "Product does not exist"
	MsgLocationNotFound = "Location does not exist"
	MsgDeltaZero        = "Adjustment must not be zero"
	MsgQuantityPositive = "Quantity must be a positive number"
)

// UseCase registra cambios de stock de forma transaccional (bloqueo de fila + Commit/Rollback).
type UseCase struct {
	txRunner  ports.TxRunner
	repo      repository.InventoryRepository
	movements repository.InventoryMovementRepository
	products  repository.ProductRepository
	locations repository.LocationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner ports.TxRunner,
	repo repository.InventoryRepository,
	movements repository.InventoryMovementRepository,
	products repository.ProductRepository,
	locations repository.LocationRepository,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		repo:      repo,
		movements: movements,
		products:  products,
		locations: locations,
	}
}

// Validate aplica ValidateInventory y comprueba que producto y ubicación existan.
func (uc *UseCase) Validate(ctx context.Context, in validation.InventoryInput) error {
	if err := domain.NewValidationError(validation.ValidateInventory(in)); err != nil {
		return err
	}
	return uc.checkRefs(ctx, in.ProductID, in.LocationID)
}

func (uc *UseCase) checkRefs(ctx context.Context, productID string, locationIDs ...string) error {
	type refs struct {
		product   string
		locations []string
	}
	res := validation.ValidateExternal(ctx, refs{productID, locationIDs}, func(ctx context.Context, r refs) (validation.Result, error) {
		var errs []string
		p, err := uc.products.GetByID(ctx, r.product)
		if err != nil {
			return validation.Result{}, err
		}
		if p == nil || !p.IsActive {
			errs = append(errs, MsgProductNotFound)
		}
		for _, id := range r.locations {
			l, err := uc.locations.GetByID(ctx, id)
			if err != nil {
				return validation.Result{}, err
			}
			if l == nil {
				errs = append(errs, MsgLocationNotFound)
				break
			}
		}
		return validation.Invalid(errs...), nil
	})
	return domain.NewValidationError(res)
}

// Upsert crea o reemplaza la línea producto+ubicación (cantidad, punto de reorden y máximo).
// La diferencia de cantidad queda registrada como ajuste.
func (uc *UseCase) Upsert(ctx context.Context, userID string, in dto.InventoryRequest) (*dto.InventoryResponse, error) {
	if err := uc.Validate(ctx, in.InventoryInput); err != nil {
		return nil, err
	}
	var out *entity.InventoryLine
	now := time.Now()
	err := uc.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		line, err := repos.Inventory.GetForUpdate(ctx, in.ProductID, in.LocationID)
		if err != nil {
			return err
		}
		if line == nil {
			line = &entity.InventoryLine{ID: uuid.New().String(), ProductID: in.ProductID, LocationID: in.LocationID}
		}
		delta := in.Quantity.Decimal().Sub(line.Quantity)
		line.Quantity = in.Quantity.Decimal()
		line.ReorderPoint = optionalDecimal(in.ReorderPoint)
		line.MaxStock = optionalDecimal(in.MaxStock)
		line.UpdatedAt = now
		if err := repos.Inventory.Upsert(ctx, line); err != nil {
			return err
		}
		if !delta.IsZero() {
			if err := repos.Movements.Create(ctx, &entity.InventoryMovement{
				ID:         uuid.New().String(),
				ProductID:  line.ProductID,
				LocationID: line.LocationID,
				Type:       entity.MovementTypeAdjustment,
				Quantity:   delta,
				Reason:     "stock count",
				CreatedBy:  userID,
				CreatedAt:  now,
			}); err != nil {
				return err
			}
		}
		out = line
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToInventoryResponse(out), nil
}

// Get devuelve la línea de un producto en una ubicación, o (nil, nil).
func (uc *UseCase) Get(ctx context.Context, productID, locationID string) (*dto.InventoryResponse, error) {
	line, err := uc.repo.Get(ctx, productID, locationID)
	if err != nil {
		return nil, err
	}
	return ToInventoryResponse(line), nil
}

// List lista inventario con filtros y paginación.
func (uc *UseCase) List(ctx context.Context, in dto.InventoryListRequest) (*dto.InventoryListResponse, error) {
	in.Normalize()
	switch in.Status {
	case "", entity.StockStatusInStock, entity.StockStatusLowStock, entity.StockStatusOutOfStock:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, total, err := uc.repo.List(ctx, repository.InventoryFilter{
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Status:     in.Status,
		Limit:      in.Limit,
		Offset:     in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *ToInventoryResponse(l))
	}
	return &dto.InventoryListResponse{Items: items, Page: dto.NewPageResponse(in.PageRequest, total)}, nil
}

// Adjust suma (o resta) Delta al stock. Nunca deja la cantidad bajo cero (ErrInsufficientStock).
func (uc *UseCase) Adjust(ctx context.Context, userID string, in dto.AdjustStockRequest) (*dto.InventoryResponse, error) {
	if in.Delta.IsZero() {
		return nil, domain.NewValidationError(validation.Invalid(MsgDeltaZero))
	}
	if in.UnitCost != nil && in.UnitCost.IsNegative() {
		return nil, domain.NewValidationError(validation.Invalid("Cost must be a positive number"))
	}
	if err := uc.checkRefs(ctx, in.ProductID, in.LocationID); err != nil {
		return nil, err
	}
	var out *entity.InventoryLine
	err := uc.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		line, err := ApplyDelta(ctx, repos, Movement{
			ProductID:  in.ProductID,
			LocationID: in.LocationID,
			Type:       entity.MovementTypeAdjustment,
			Delta:      in.Delta,
			UnitCost:   in.UnitCost,
			Reason:     in.Reason,
			UserID:     userID,
			At:         time.Now(),
		})
		out = line
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToInventoryResponse(out), nil
}

// Transfer mueve Quantity de una ubicación a otra en una sola transacción.
func (uc *UseCase) Transfer(ctx context.Context, userID string, in dto.TransferStockRequest) (*dto.TransferResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.NewValidationError(validation.Invalid(MsgQuantityPositive))
	}
	if in.FromLocationID == in.ToLocationID {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRefs(ctx, in.ProductID, in.FromLocationID, in.ToLocationID); err != nil {
		return nil, err
	}
	var out dto.TransferResponse
	now := time.Now()
	ref := uuid.New().String()
	err := uc.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		from, err := ApplyDelta(ctx, repos, Movement{
			ProductID: in.ProductID, LocationID: in.FromLocationID, Type: entity.MovementTypeTransferOut,
			Delta: in.Quantity.Neg(), Reason: in.Reason, ReferenceID: ref, UserID: userID, At: now,
		})
		if err != nil {
			return err
		}
		to, err := ApplyDelta(ctx, repos, Movement{
			ProductID: in.ProductID, LocationID: in.ToLocationID, Type: entity.MovementTypeTransferIn,
			Delta: in.Quantity, Reason: in.Reason, ReferenceID: ref, UserID: userID, At: now,
		})
		if err != nil {
			return err
		}
		out.From = *ToInventoryResponse(from)
		out.To = *ToInventoryResponse(to)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Movements historial de movimientos de un producto.
func (uc *UseCase) Movements(ctx context.Context, productID string, page dto.PageRequest) ([]dto.MovementResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	page.Normalize()
	list, err := uc.movements.ListByProduct(ctx, productID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			LocationID:  m.LocationID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			UnitCost:    m.UnitCost,
			Reason:      m.Reason,
			ReferenceID: m.ReferenceID,
			CreatedBy:   m.CreatedBy,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

// ToInventoryResponse convierte la línea incluyendo disponible y estado derivado.
func ToInventoryResponse(l *entity.InventoryLine) *dto.InventoryResponse {
	if l == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:               l.ID,
		ProductID:        l.ProductID,
		LocationID:       l.LocationID,
		Quantity:         l.Quantity,
		ReservedQuantity: l.ReservedQuantity,
		Available:        l.Available(),
		ReorderPoint:     l.ReorderPoint,
		MaxStock:         l.MaxStock,
		Status:           l.Status(),
		UpdatedAt:        l.UpdatedAt,
	}
}

func optionalDecimal(n validation.Number) *decimal.Decimal {
	if !n.IsNumber() {
		return nil
	}
	d := n.Decimal()
	return &d
}
