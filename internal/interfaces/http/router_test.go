package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/serranotex/serrano-tex-ims/internal/application/analytics"
	"github.com/serranotex/serrano-tex-ims/internal/application/apptest"
	"github.com/serranotex/serrano-tex-ims/internal/application/auth"
	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/application/inventory"
	"github.com/serranotex/serrano-tex-ims/internal/application/usecase"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
	apphttp "github.com/serranotex/serrano-tex-ims/internal/interfaces/http"
)

const (
	catID  = "c0000000-0000-0000-0000-000000000001"
	prodID = "a0000000-0000-0000-0000-00000000000a"
	locID  = "10000000-0000-0000-0000-000000000001"
)

type emptyDashboard struct{}

func (emptyDashboard) KPIs(context.Context, time.Time, time.Time) (*repository.DashboardKPIs, error) {
	return &repository.DashboardKPIs{ProductCount: 1}, nil
}

func (emptyDashboard) TopProducts(context.Context, time.Time, time.Time, int) ([]repository.TopProduct, error) {
	return []repository.TopProduct{{ProductID: prodID, SKU: "LIN-001"}}, nil
}

func (emptyDashboard) SalesTrend(context.Context, time.Time, time.Time) ([]repository.DailySales, error) {
	return nil, nil
}

func (emptyDashboard) SalesInRange(context.Context, time.Time, time.Time) ([]repository.SalesReportRow, error) {
	return nil, nil
}

type fakePDF struct{}

func (fakePDF) SalesReport(context.Context, appanalytics.SalesReport) ([]byte, error) {
	return []byte("%PDF-report"), nil
}

func (fakePDF) SaleReceipt(context.Context, *entity.Sale, *entity.Customer, []appanalytics.ReceiptLine) ([]byte, error) {
	return []byte("%PDF-receipt"), nil
}

func buildAPI(t *testing.T) (*fiber.App, *apptest.Store) {
	t.Helper()
	s := apptest.NewStore()
	s.Categories[catID] = entity.Category{ID: catID, Name: "Telas", Code: "TEL"}
	s.Locations[locID] = entity.Location{ID: locID, Name: "Bodega"}
	s.Products[prodID] = entity.Product{ID: prodID, Name: "Lino", SKU: "LIN-001", Price: decimal.NewFromInt(50), CategoryID: catID, IsActive: true}
	s.Lines[prodID+"|"+locID] = entity.InventoryLine{ID: "l1", ProductID: prodID, LocationID: locID, Quantity: decimal.NewFromInt(3)}

	tx := apptest.TxRunner{S: s}
	products, customers, locations := apptest.ProductRepo{S: s}, apptest.CustomerRepo{S: s}, apptest.LocationRepo{S: s}
	sales := apptest.SaleRepo{S: s}
	reports := appanalytics.NewReportUseCase(emptyDashboard{}, sales, customers, products, fakePDF{}, "Serrano Tex")

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:       usecase.NewProductUseCase(products, apptest.CategoryRepo{S: s}),
		CatalogUC:       usecase.NewCatalogUseCase(apptest.CategoryRepo{S: s}, locations),
		CustomerUC:      usecase.NewCustomerUseCase(customers),
		SaleUC:          usecase.NewSaleUseCase(tx, sales, products, customers, locations),
		InventoryUC:     inventory.NewUseCase(tx, apptest.InventoryRepo{S: s}, apptest.MovementRepo{S: s}, products, locations),
		ReplenishmentUC: inventory.NewReplenishmentUseCase(apptest.InventoryRepo{S: s}, products),
		DashboardUC:     appanalytics.NewDashboardUseCase(emptyDashboard{}),
		ReportUC:        reports,
		AuthUC:          auth.NewAuthUseCase(apptest.UserRepo{S: s}, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60}, validation.DefaultPasswordPolicy),
		JWTSecret:       testJWTSecret,
	})
	return app, s
}

func call(t *testing.T, app *fiber.App, method, path, role string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	var out map[string]any
	if resp.Header.Get("Content-Type") == fiber.MIMEApplicationJSON {
		_ = json.NewDecoder(resp.Body).Decode(&out)
	}
	return resp, out
}

func TestAPI_CrearProducto_422ConMensajes(t *testing.T) {
	app, _ := buildAPI(t)
	resp, body := call(t, app, http.MethodPost, "/api/products", "manager", map[string]any{
		"name": "Lino crudo", "sku": "LIN-001", "price": "12", "cost": 5, "category_id": catID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, []any{"Price must be a positive number"}, body["errors"])

	// con el formulario válido se llega a las comprobaciones contra la base
	resp, body = call(t, app, http.MethodPost, "/api/products", "manager", map[string]any{
		"name": "Lino crudo", "sku": "LIN-001", "price": 12, "cost": 5, "category_id": catID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []any{usecase.MsgSKUTaken}, body["errors"])
}

func TestAPI_CrearProducto_ViewerNoPuede(t *testing.T) {
	app, _ := buildAPI(t)
	resp, body := call(t, app, http.MethodPost, "/api/products", "viewer", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestAPI_Venta_StockInsuficiente409(t *testing.T) {
	app, s := buildAPI(t)
	resp, body := call(t, app, http.MethodPost, "/api/sales", "employee", map[string]any{
		"location_id": locID,
		"items":       []map[string]any{{"product_id": prodID, "quantity": 5, "price": 50}},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Empty(t, s.Sales)

	resp, body = call(t, app, http.MethodPost, "/api/sales", "employee", map[string]any{
		"location_id": locID,
		"items":       []map[string]any{{"product_id": prodID, "quantity": 2, "price": 50}},
		"tax_rate":    19,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "119", body["total"])

	receipt, _ := call(t, app, http.MethodGet, "/api/sales/"+body["id"].(string)+"/receipt", "viewer", nil)
	assert.Equal(t, http.StatusOK, receipt.StatusCode)
	assert.Equal(t, "application/pdf", receipt.Header.Get("Content-Type"))
}

func TestAPI_AjusteSoloManager(t *testing.T) {
	app, _ := buildAPI(t)
	req := dto.AdjustStockRequest{ProductID: prodID, LocationID: locID, Delta: decimal.NewFromInt(2), Reason: "compra"}

	resp, _ := call(t, app, http.MethodPost, "/api/inventory/adjust", "employee", req)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := call(t, app, http.MethodPost, "/api/inventory/adjust", "manager", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "5", body["quantity"])

	resp, body = call(t, app, http.MethodPost, "/api/inventory/adjust", "manager", map[string]any{"delta": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["errors"], "product_id is required")
}

func TestAPI_ValidacionEnSeco(t *testing.T) {
	app, _ := buildAPI(t)
	resp, body := call(t, app, http.MethodPost, "/api/validate/customer", "viewer", map[string]any{"name": "A", "email": "x"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["isValid"])
	assert.Equal(t, []any{"Customer name must be at least 2 characters long", "Email format is invalid"}, body["errors"])

	resp, body = call(t, app, http.MethodPost, "/api/validate/password", "", map[string]any{"password": "Secreta123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["isValid"])
	assert.Equal(t, []any{}, body["errors"])

	resp, body = call(t, app, http.MethodPost, "/api/validate/registration", "admin", map[string]any{"email": "a@b.co", "password": ""})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["isValid"])
	assert.Equal(t, map[string]any{"password": []any{"Password is required"}}, body["errors"])
	assert.NotContains(t, body, "valid")
	assert.NotContains(t, body, "fields")
}

func TestAPI_DashboardSegunRol(t *testing.T) {
	app, _ := buildAPI(t)
	_, body := call(t, app, http.MethodGet, "/api/dashboard", "admin", nil)
	assert.Len(t, body["top_products"], 1)

	resp, body := call(t, app, http.MethodGet, "/api/dashboard", "viewer", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "top_products")

	resp, _ = call(t, app, http.MethodGet, "/api/dashboard?from=2026-13-01", "viewer", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/reports/sales.pdf", "employee", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = call(t, app, http.MethodGet, "/api/reports/sales.pdf", "manager", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_LoginYMe(t *testing.T) {
	app, _ := buildAPI(t)
	resp, _ := call(t, app, http.MethodPost, "/api/users", "admin", map[string]any{
		"email": "ana@serrano.co", "password": "Secreta123", "name": "Ana", "role": "employee",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := call(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ana@serrano.co", "password": "mala"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])

	resp, body = call(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ana@serrano.co", "password": "Secreta123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	me, err := app.Test(req, -1)
	require.NoError(t, err)
	defer me.Body.Close()
	var meBody dto.MeResponse
	require.NoError(t, json.NewDecoder(me.Body).Decode(&meBody))
	assert.Equal(t, "employee", meBody.User.Role)
	assert.Len(t, meBody.Permissions, 8)
}
