package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse métricas del tablero para el período [From, To).
type DashboardResponse struct {
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	TotalProducts  int             `json:"total_products"`
	LowStockItems  int             `json:"low_stock_items"`
	TotalCustomers int             `json:"total_customers"`
	TotalSales     int             `json:"total_sales"`
	ActiveOrders   int             `json:"active_orders"`
	Revenue        decimal.Decimal `json:"revenue"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	SalesTrend     []DailySalesDTO `json:"sales_trend"`
	TopProducts    []TopProductDTO `json:"top_products,omitempty"`
}

// DailySalesDTO punto de la tendencia diaria.
type DailySalesDTO struct {
	Date    string          `json:"date"` // 2006-01-02
	Sales   int             `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TopProductDTO producto más vendido.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitsSold decimal.Decimal `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}
