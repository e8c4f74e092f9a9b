package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serranotex/serrano-tex-ims/internal/application/apptest"
	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/application/usecase"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

const (
	prodA  = "a0000000-0000-0000-0000-00000000000a"
	prodB  = "b0000000-0000-0000-0000-00000000000b"
	bodega = "10000000-0000-0000-0000-000000000001"
)

func newSaleUC(t *testing.T) (*usecase.SaleUseCase, *apptest.Store) {
	t.Helper()
	s := apptest.NewStore()
	now := time.Now()
	s.Products[prodA] = entity.Product{ID: prodA, Name: "Lino", SKU: "LIN-001", Price: decimal.NewFromInt(50), IsActive: true, CreatedAt: now}
	s.Products[prodB] = entity.Product{ID: prodB, Name: "Hilo", SKU: "HIL-001", Price: decimal.NewFromInt(20), IsActive: true, CreatedAt: now}
	s.Locations[bodega] = entity.Location{ID: bodega, Name: "Bodega central"}
	s.Lines[prodA+"|"+bodega] = entity.InventoryLine{ID: "l-a", ProductID: prodA, LocationID: bodega, Quantity: decimal.NewFromInt(10)}
	s.Lines[prodB+"|"+bodega] = entity.InventoryLine{ID: "l-b", ProductID: prodB, LocationID: bodega, Quantity: decimal.NewFromInt(1)}
	uc := usecase.NewSaleUseCase(apptest.TxRunner{S: s}, apptest.SaleRepo{S: s},
		apptest.ProductRepo{S: s}, apptest.CustomerRepo{S: s}, apptest.LocationRepo{S: s})
	return uc, s
}

func saleRequest(qtyB float64) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{SaleInput: validation.SaleInput{
		LocationID: bodega,
		Items: []validation.SaleItemInput{
			{ProductID: prodA, Quantity: validation.Num(2), Price: validation.Num(50)},
			{ProductID: prodB, Quantity: validation.Num(qtyB), Price: validation.Num(20)},
		},
		Discount: validation.Num(10),
		TaxRate:  validation.Num(19),
	}}
}

func TestSaleCreate_TotalesYDescuentoDeStock(t *testing.T) {
	uc, s := newSaleUC(t)
	out, err := uc.Create(context.Background(), "u-1", saleRequest(1))
	require.NoError(t, err)

	assert.Equal(t, "120", out.Subtotal.String())
	assert.Equal(t, "12", out.DiscountTotal.String())
	assert.Equal(t, "20.52", out.TaxTotal.String())
	assert.Equal(t, "128.52", out.Total.String())
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Len(t, out.Items, 2)

	assert.Equal(t, "8", s.Quantity(prodA, bodega).String())
	assert.True(t, s.Quantity(prodB, bodega).IsZero())
	assert.Len(t, s.Movements, 2)
}

func TestSaleCreate_StockInsuficienteNoGuardaNada(t *testing.T) {
	uc, s := newSaleUC(t)
	_, err := uc.Create(context.Background(), "u-1", saleRequest(5))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, s.Sales)
	assert.Empty(t, s.Movements)
	assert.Equal(t, "10", s.Quantity(prodA, bodega).String())
}

func TestSaleCreate_ReferenciasInexistentes(t *testing.T) {
	uc, _ := newSaleUC(t)
	in := saleRequest(1)
	in.CustomerID = "no-existe"
	in.Items[1].ProductID = "tampoco"
	_, err := uc.Create(context.Background(), "u-1", in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{usecase.MsgCustomerNotFound, "Item 2: Product does not exist"}, verr.Errors)
}

func TestSaleUpdateStatus_CancelarDevuelveStock(t *testing.T) {
	uc, s := newSaleUC(t)
	ctx := context.Background()
	sale, err := uc.Create(ctx, "u-1", saleRequest(1))
	require.NoError(t, err)

	out, err := uc.UpdateStatus(ctx, "u-2", sale.ID, dto.UpdateSaleStatusRequest{Status: entity.OrderStatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, out.Status)
	assert.Equal(t, "10", s.Quantity(prodA, bodega).String())
	assert.Equal(t, "1", s.Quantity(prodB, bodega).String())

	// una venta cancelada no se reabre
	_, err = uc.UpdateStatus(ctx, "u-2", sale.ID, dto.UpdateSaleStatusRequest{Status: entity.OrderStatusPending})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSaleDelete_SinCancelarEsConflicto(t *testing.T) {
	uc, s := newSaleUC(t)
	ctx := context.Background()
	sale, err := uc.Create(ctx, "u-1", saleRequest(1))
	require.NoError(t, err)

	err = uc.Delete(ctx, sale.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, s.Sales, sale.ID)
	assert.Equal(t, "8", s.Quantity(prodA, bodega).String())
}

func TestSaleDelete_CanceladaSeElimina(t *testing.T) {
	uc, s := newSaleUC(t)
	ctx := context.Background()
	sale, err := uc.Create(ctx, "u-1", saleRequest(1))
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, "u-2", sale.ID, dto.UpdateSaleStatusRequest{Status: entity.OrderStatusCancelled})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, sale.ID))
	assert.NotContains(t, s.Sales, sale.ID)
	assert.Equal(t, "10", s.Quantity(prodA, bodega).String())
	assert.Equal(t, "1", s.Quantity(prodB, bodega).String())
}

func TestSaleDelete_SinUbicacionYNoExiste(t *testing.T) {
	uc, s := newSaleUC(t)
	ctx := context.Background()
	req := saleRequest(1)
	req.LocationID = ""
	sale, err := uc.Create(ctx, "u-1", req)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, sale.ID))
	assert.Empty(t, s.Sales)
	assert.ErrorIs(t, uc.Delete(ctx, sale.ID), domain.ErrNotFound)
}

func TestSaleUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _ := newSaleUC(t)
	_, err := uc.UpdateStatus(context.Background(), "u-1", "x", dto.UpdateSaleStatusRequest{Status: "lost", PaymentStatus: "maybe"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{usecase.MsgInvalidOrderStatus, usecase.MsgInvalidPaymentStatus}, verr.Errors)
}

func TestSaleUpdateStatus_NoExiste(t *testing.T) {
	uc, _ := newSaleUC(t)
	out, err := uc.UpdateStatus(context.Background(), "u-1", "x", dto.UpdateSaleStatusRequest{PaymentStatus: entity.PaymentStatusPaid})
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestSaleList_FechaInvalida(t *testing.T) {
	uc, _ := newSaleUC(t)
	_, err := uc.List(context.Background(), dto.SaleListRequest{From: "01/02/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
