package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/application/inventory"
	"github.com/serranotex/serrano-tex-ims/internal/application/ports"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
	"github.com/serranotex/serrano-tex-ims/internal/domain/sales"
	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

// Mensajes de validación de ventas.
const (
	MsgCustomerNotFound     = "Customer does not exist"
	MsgLocationNotFound     = "Location does not exist"
	MsgInvalidOrderStatus   = "Invalid order status"
	MsgInvalidPaymentStatus = "Invalid payment status"
)

// SaleUseCase registra ventas: totales, líneas y descuento de stock en una sola transacción.
type SaleUseCase struct {
	txRunner  ports.TxRunner
	repo      repository.SaleRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	locations repository.LocationRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner ports.TxRunner,
	repo repository.SaleRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	locations repository.LocationRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:  txRunner,
		repo:      repo,
		products:  products,
		customers: customers,
		locations: locations,
	}
}

// Validate aplica ValidateSale y comprueba que cliente, ubicación y productos existan.
func (uc *SaleUseCase) Validate(ctx context.Context, in validation.SaleInput) error {
	if err := domain.NewValidationError(validation.ValidateSale(in)); err != nil {
		return err
	}
	res := validation.ValidateExternal(ctx, in, uc.checkReferences)
	return domain.NewValidationError(res)
}

func (uc *SaleUseCase) checkReferences(ctx context.Context, in validation.SaleInput) (validation.Result, error) {
	var errs []string
	if in.CustomerID != "" {
		c, err := uc.customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return validation.Result{}, err
		}
		if c == nil {
			errs = append(errs, MsgCustomerNotFound)
		}
	}
	if in.LocationID != "" {
		l, err := uc.locations.GetByID(ctx, in.LocationID)
		if err != nil {
			return validation.Result{}, err
		}
		if l == nil {
			errs = append(errs, MsgLocationNotFound)
		}
	}
	for i, item := range in.Items {
		p, err := uc.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return validation.Result{}, err
		}
		if p == nil || !p.IsActive {
			errs = append(errs, fmt.Sprintf("Item %d: Product does not exist", i+1))
		}
	}
	return validation.Invalid(errs...), nil
}

// Create valida, calcula totales y persiste la venta. Si trae ubicación, descuenta el stock de
// cada línea en esa ubicación; sin existencias suficientes devuelve ErrInsufficientStock y no guarda nada.
func (uc *SaleUseCase) Create(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := uc.Validate(ctx, in.SaleInput); err != nil {
		return nil, err
	}

	lines := make([]sales.Line, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, sales.Line{Quantity: it.Quantity.Decimal(), UnitPrice: it.Price.Decimal()})
	}
	totals := sales.Calculate(lines, in.Discount.Decimal(), in.TaxRate.Decimal())

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		LocationID:    in.LocationID,
		Discount:      in.Discount.Decimal(),
		TaxRate:       in.TaxRate.Decimal(),
		Subtotal:      totals.Subtotal,
		DiscountTotal: totals.DiscountTotal,
		TaxTotal:      totals.TaxTotal,
		Total:         totals.Total,
		Notes:         in.Notes,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for i, it := range in.Items {
		sale.Items = append(sale.Items, entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity.Decimal(),
			UnitPrice: it.Price.Decimal(),
			Subtotal:  totals.LineSubtotals[i],
		})
	}

	err := uc.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		if err := repos.Sales.Create(ctx, sale); err != nil {
			return err
		}
		if sale.LocationID == "" {
			return nil
		}
		for i, it := range sale.Items {
			if _, err := inventory.ApplyDelta(ctx, repos, inventory.Movement{
				ProductID:   it.ProductID,
				LocationID:  sale.LocationID,
				Type:        entity.MovementTypeSale,
				Delta:       it.Quantity.Neg(),
				Reason:      fmt.Sprintf("item %d", i+1),
				ReferenceID: sale.ID,
				UserID:      userID,
				At:          now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene la venta con sus líneas. Devuelve (nil, nil) si no existe.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(s), nil
}

// List lista ventas con filtros. Fechas inválidas -> ErrInvalidInput.
func (uc *SaleUseCase) List(ctx context.Context, in dto.SaleListRequest) (*dto.SaleListResponse, error) {
	in.Normalize()
	f := repository.SaleFilter{
		CustomerID:    in.CustomerID,
		Status:        in.Status,
		PaymentStatus: in.PaymentStatus,
		Limit:         in.Limit,
		Offset:        in.Offset(),
	}
	if in.From != "" {
		from, err := time.Parse(time.DateOnly, in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		f.From = &from
	}
	if in.To != "" {
		to, err := time.Parse(time.DateOnly, in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		to = to.AddDate(0, 0, 1) // inclusivo
		f.To = &to
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Page: dto.NewPageResponse(in.PageRequest, total)}, nil
}

// UpdateStatus cambia estado, estado de pago o notas. Al cancelar una venta con ubicación
// devuelve el stock de sus líneas. Devuelve (nil, nil) si no existe.
func (uc *SaleUseCase) UpdateStatus(ctx context.Context, userID, id string, in dto.UpdateSaleStatusRequest) (*dto.SaleResponse, error) {
	var errs []string
	if in.Status != "" && !slices.Contains(entity.OrderStatuses, in.Status) {
		errs = append(errs, MsgInvalidOrderStatus)
	}
	if in.PaymentStatus != "" && !slices.Contains(entity.PaymentStatuses, in.PaymentStatus) {
		errs = append(errs, MsgInvalidPaymentStatus)
	}
	if in.Notes != nil {
		errs = append(errs, validation.ValidateField(*in.Notes, validation.FieldRule{MaxLength: 500}, "Notes").Errors...)
	}
	if err := domain.NewValidationError(validation.Invalid(errs...)); err != nil {
		return nil, err
	}

	var out *entity.Sale
	err := uc.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		s, err := repos.Sales.GetByID(ctx, id)
		if err != nil || s == nil {
			return err
		}
		cancelling := in.Status == entity.OrderStatusCancelled && s.Status != entity.OrderStatusCancelled
		if s.Status == entity.OrderStatusCancelled && in.Status != "" && in.Status != entity.OrderStatusCancelled {
			return domain.ErrConflict
		}
		if in.Status != "" {
			s.Status = in.Status
		}
		if in.PaymentStatus != "" {
			s.PaymentStatus = in.PaymentStatus
		}
		if in.Notes != nil {
			s.Notes = *in.Notes
		}
		s.UpdatedAt = time.Now()
		if err := repos.Sales.UpdateStatus(ctx, s); err != nil {
			return err
		}
		if cancelling && s.LocationID != "" {
			for _, it := range s.Items {
				if _, err := inventory.ApplyDelta(ctx, repos, inventory.Movement{
					ProductID:   it.ProductID,
					LocationID:  s.LocationID,
					Type:        entity.MovementTypeSale,
					Delta:       it.Quantity,
					Reason:      "sale cancelled",
					ReferenceID: s.ID,
					UserID:      userID,
					At:          s.UpdatedAt,
				}); err != nil {
					return err
				}
			}
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(out), nil
}

// Delete elimina una venta. Si descontó stock de una ubicación debe estar cancelada (ErrConflict si no).
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		s, err := repos.Sales.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		// El stock solo vuelve a la ubicación al cancelar.
		if s.LocationID != "" && s.Status != entity.OrderStatusCancelled {
			return domain.ErrConflict
		}
		return repos.Sales.Delete(ctx, id)
	})
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	out := &dto.SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		LocationID:    s.LocationID,
		Discount:      s.Discount,
		TaxRate:       s.TaxRate,
		Subtotal:      s.Subtotal,
		DiscountTotal: s.DiscountTotal,
		TaxTotal:      s.TaxTotal,
		Total:         s.Total,
		Notes:         s.Notes,
		Status:        s.Status,
		PaymentStatus: s.PaymentStatus,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	for _, it := range s.Items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return out
}
