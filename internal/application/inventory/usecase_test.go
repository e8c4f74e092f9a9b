package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serranotex/serrano-tex-ims/internal/application/apptest"
	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/application/inventory"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

const (
	prod   = "a0000000-0000-0000-0000-00000000000a"
	bodega = "10000000-0000-0000-0000-000000000001"
	tienda = "10000000-0000-0000-0000-000000000002"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func newInventoryUC(t *testing.T) (*inventory.UseCase, *apptest.Store) {
	t.Helper()
	s := apptest.NewStore()
	s.Products[prod] = entity.Product{ID: prod, Name: "Lino", SKU: "LIN-001", Cost: dec(100), IsActive: true}
	s.Locations[bodega] = entity.Location{ID: bodega, Name: "Bodega"}
	s.Locations[tienda] = entity.Location{ID: tienda, Name: "Tienda"}
	uc := inventory.NewUseCase(apptest.TxRunner{S: s}, apptest.InventoryRepo{S: s}, apptest.MovementRepo{S: s},
		apptest.ProductRepo{S: s}, apptest.LocationRepo{S: s})
	return uc, s
}

func TestUpsert_RegistraDiferenciaComoAjuste(t *testing.T) {
	uc, s := newInventoryUC(t)
	ctx := context.Background()
	in := dto.InventoryRequest{InventoryInput: validation.InventoryInput{
		ProductID: prod, LocationID: bodega, Quantity: validation.Num(10), ReorderPoint: validation.Num(4),
	}}
	out, err := uc.Upsert(ctx, "u-1", in)
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusInStock, out.Status)

	in.Quantity = validation.Num(3)
	out, err = uc.Upsert(ctx, "u-1", in)
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusLowStock, out.Status)

	require.Len(t, s.Movements, 2)
	assert.Equal(t, "-7", s.Movements[1].Quantity.String())
}

func TestUpsert_MaxStockMenorQueReorden(t *testing.T) {
	uc, _ := newInventoryUC(t)
	_, err := uc.Upsert(context.Background(), "u-1", dto.InventoryRequest{InventoryInput: validation.InventoryInput{
		ProductID: prod, LocationID: bodega, Quantity: validation.Num(1),
		ReorderPoint: validation.Num(10), MaxStock: validation.Num(5),
	}})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Max stock must be greater than or equal to reorder point"}, verr.Errors)
}

func TestAdjust_NoQuedaNegativo(t *testing.T) {
	uc, s := newInventoryUC(t)
	s.Lines[prod+"|"+bodega] = entity.InventoryLine{ID: "l", ProductID: prod, LocationID: bodega, Quantity: dec(3)}

	_, err := uc.Adjust(context.Background(), "u-1", dto.AdjustStockRequest{
		ProductID: prod, LocationID: bodega, Delta: dec(-4), Reason: "merma",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "3", s.Quantity(prod, bodega).String())
	assert.Empty(t, s.Movements)
}

func TestAdjust_EntradaRecalculaCostoPromedio(t *testing.T) {
	uc, s := newInventoryUC(t)
	s.Lines[prod+"|"+bodega] = entity.InventoryLine{ID: "l", ProductID: prod, LocationID: bodega, Quantity: dec(10)}

	out, err := uc.Adjust(context.Background(), "u-1", dto.AdjustStockRequest{
		ProductID: prod, LocationID: bodega, Delta: dec(10), Reason: "compra", UnitCost: ptr(dec(200)),
	})
	require.NoError(t, err)
	assert.Equal(t, "20", out.Quantity.String())
	assert.Equal(t, "150", s.Products[prod].Cost.String())
}

func TestAdjust_DeltaCero(t *testing.T) {
	uc, _ := newInventoryUC(t)
	_, err := uc.Adjust(context.Background(), "u-1", dto.AdjustStockRequest{ProductID: prod, LocationID: bodega, Reason: "x"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{inventory.MsgDeltaZero}, verr.Errors)
}

func TestTransfer_MueveEntreUbicaciones(t *testing.T) {
	uc, s := newInventoryUC(t)
	s.Lines[prod+"|"+bodega] = entity.InventoryLine{ID: "l", ProductID: prod, LocationID: bodega, Quantity: dec(8)}

	out, err := uc.Transfer(context.Background(), "u-1", dto.TransferStockRequest{
		ProductID: prod, FromLocationID: bodega, ToLocationID: tienda, Quantity: dec(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "3", out.From.Quantity.String())
	assert.Equal(t, "5", out.To.Quantity.String())

	require.Len(t, s.Movements, 2)
	assert.Equal(t, entity.MovementTypeTransferOut, s.Movements[0].Type)
	assert.Equal(t, entity.MovementTypeTransferIn, s.Movements[1].Type)
	assert.Equal(t, s.Movements[0].ReferenceID, s.Movements[1].ReferenceID)

	movs, err := uc.Movements(context.Background(), prod, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeTransferIn, movs[0].Type)
}

func TestTransfer_SinStockSuficienteNoMueveNada(t *testing.T) {
	uc, s := newInventoryUC(t)
	s.Lines[prod+"|"+bodega] = entity.InventoryLine{ID: "l", ProductID: prod, LocationID: bodega, Quantity: dec(2)}

	_, err := uc.Transfer(context.Background(), "u-1", dto.TransferStockRequest{
		ProductID: prod, FromLocationID: bodega, ToLocationID: tienda, Quantity: dec(5),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, s.Quantity(prod, tienda).IsZero())
}

func TestTransfer_UbicacionInexistente(t *testing.T) {
	uc, _ := newInventoryUC(t)
	_, err := uc.Transfer(context.Background(), "u-1", dto.TransferStockRequest{
		ProductID: prod, FromLocationID: bodega, ToLocationID: "otra", Quantity: dec(1),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{inventory.MsgLocationNotFound}, verr.Errors)
}

func TestList_EstadoDesconocido(t *testing.T) {
	uc, _ := newInventoryUC(t)
	_, err := uc.List(context.Background(), dto.InventoryListRequest{Status: "lost"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLowStock_SugerenciaYOrden(t *testing.T) {
	s := apptest.NewStore()
	s.Products[prod] = entity.Product{ID: prod, SKU: "LIN-001", Name: "Lino", Cost: dec(10)}
	s.Lines["a"] = entity.InventoryLine{ProductID: prod, LocationID: bodega, Quantity: dec(2), ReorderPoint: ptr(dec(4))}
	s.Lines["b"] = entity.InventoryLine{ProductID: prod, LocationID: tienda, Quantity: dec(0), ReorderPoint: ptr(dec(10)), MaxStock: ptr(dec(30))}
	s.Lines["c"] = entity.InventoryLine{ProductID: prod, LocationID: "x", Quantity: dec(50), ReorderPoint: ptr(dec(10))}

	uc := inventory.NewReplenishmentUseCase(apptest.InventoryRepo{S: s}, apptest.ProductRepo{S: s})
	out, err := uc.LowStock(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, tienda, out[0].LocationID)
	assert.Equal(t, "30", out[0].SuggestedOrderQty.String())
	assert.Equal(t, "300", out[0].EstimatedOrderCost.String())

	assert.Equal(t, "2", out[1].Deficit.String())
	assert.Equal(t, "4", out[1].SuggestedOrderQty.String())
	assert.Equal(t, "LIN-001", out[1].SKU)
}
