package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de lectura para tablero y reportes.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// KPIs agrega conteos de catálogo y ventas no canceladas del período [from, to).
func (r *DashboardRepo) KPIs(ctx context.Context, from, to time.Time) (*repository.DashboardKPIs, error) {
	var k repository.DashboardKPIs
	err := r.q.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM products WHERE is_active),
			(SELECT count(*) FROM inventory WHERE reorder_point IS NOT NULL AND quantity <= reorder_point),
			(SELECT count(*) FROM customers),
			(SELECT COALESCE(sum(i.quantity * p.cost), 0) FROM inventory i JOIN products p ON p.id = i.product_id),
			count(*),
			COALESCE(sum(total), 0),
			count(*) FILTER (WHERE status <> $4)
		FROM sales
		WHERE created_at >= $1 AND created_at < $2 AND status <> $3`,
		from, to, entity.OrderStatusCancelled, entity.OrderStatusDelivered,
	).Scan(&k.ProductCount, &k.LowStockCount, &k.CustomerCount, &k.InventoryValue,
		&k.SalesCount, &k.Revenue, &k.ActiveOrders)
	if err != nil {
		return nil, fmt.Errorf("dashboard kpis: %w", err)
	}
	return &k, nil
}

// TopProducts productos con mayor ingreso en el período.
func (r *DashboardRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProduct, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.sku, p.name, sum(si.quantity), sum(si.subtotal) AS revenue
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		WHERE s.created_at >= $1 AND s.created_at < $2 AND s.status <> $3
		GROUP BY p.id, p.sku, p.name
		ORDER BY revenue DESC, p.id
		LIMIT $4`,
		from, to, entity.OrderStatusCancelled, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ProductID, &t.SKU, &t.Name, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// SalesTrend ventas no canceladas agrupadas por día (UTC).
func (r *DashboardRepo) SalesTrend(ctx context.Context, from, to time.Time) ([]repository.DailySales, error) {
	rows, err := r.q.Query(ctx, `
		SELECT date_trunc('day', created_at AT TIME ZONE 'UTC') AS day, count(*), COALESCE(sum(total), 0)
		FROM sales
		WHERE created_at >= $1 AND created_at < $2 AND status <> $3
		GROUP BY day ORDER BY day`,
		from, to, entity.OrderStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("sales trend: %w", err)
	}
	defer rows.Close()
	var list []repository.DailySales
	for rows.Next() {
		var d repository.DailySales
		if err := rows.Scan(&d.Date, &d.Sales, &d.Revenue); err != nil {
			return nil, fmt.Errorf("scan sales trend: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// SalesInRange filas del reporte de ventas, en orden cronológico.
func (r *DashboardRepo) SalesInRange(ctx context.Context, from, to time.Time) ([]repository.SalesReportRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT s.id, s.created_at, COALESCE(c.name, ''), s.status, s.payment_status, s.total
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.created_at >= $1 AND s.created_at < $2
		ORDER BY s.created_at, s.id`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("sales in range: %w", err)
	}
	defer rows.Close()
	var list []repository.SalesReportRow
	for rows.Next() {
		var s repository.SalesReportRow
		if err := rows.Scan(&s.SaleID, &s.CreatedAt, &s.CustomerName, &s.Status, &s.PaymentStatus, &s.Total); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
