package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardKPIs agregados crudos del tablero. Las ventas canceladas no cuentan.
type DashboardKPIs struct {
	ProductCount  int
	LowStockCount int
	CustomerCount int
	SalesCount    int
	Revenue       decimal.Decimal
	// ActiveOrders ventas del período aún no entregadas ni canceladas.
	ActiveOrders   int
	InventoryValue decimal.Decimal // Σ cantidad·costo de todo el stock
}

// DailySales ventas agregadas por día.
type DailySales struct {
	Date    time.Time
	Sales   int
	Revenue decimal.Decimal
}

// TopProduct producto más vendido en el período.
type TopProduct struct {
	ProductID string
	SKU       string
	Name      string
	UnitsSold decimal.Decimal
	Revenue   decimal.Decimal
}

// SalesReportRow fila del reporte de ventas.
type SalesReportRow struct {
	SaleID        string
	CreatedAt     time.Time
	CustomerName  string // "" si la venta no tiene cliente
	Status        string
	PaymentStatus string
	Total         decimal.Decimal
}

// DashboardRepository consultas de solo lectura para el tablero y los reportes.
type DashboardRepository interface {
	KPIs(ctx context.Context, from, to time.Time) (*DashboardKPIs, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProduct, error)
	SalesTrend(ctx context.Context, from, to time.Time) ([]DailySales, error)
	SalesInRange(ctx context.Context, from, to time.Time) ([]SalesReportRow, error)
}
