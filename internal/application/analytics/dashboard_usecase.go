// Package analytics contiene los casos de uso del tablero y los reportes de ventas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/access"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
)

const (
	dashboardTopProducts = 5  // productos en el widget del tablero
	defaultPeriodDays    = 30 // período por defecto si no se indica rango
)

// DashboardUseCase genera las métricas del tablero.
type DashboardUseCase struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// Period resuelve el rango [from, to) en días UTC. Fechas vacías: últimos 30 días incluyendo hoy.
// to es inclusivo en la entrada. Fechas mal formadas o from > to -> ErrInvalidInput.
func Period(fromS, toS string, now time.Time) (from, to time.Time, err error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to = today.AddDate(0, 0, 1)
	if toS != "" {
		t, err := time.Parse(time.DateOnly, toS)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		to = t.AddDate(0, 0, 1)
	}
	from = to.AddDate(0, 0, -defaultPeriodDays)
	if fromS != "" {
		f, err := time.Parse(time.DateOnly, fromS)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		from = f
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return from, to, nil
}

// GetDashboard arma KPIs, tendencia diaria y, si el rol tiene reports:advanced, los productos
// más vendidos. Las consultas corren en paralelo.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, role access.Role, fromS, toS string) (*dto.DashboardResponse, error) {
	from, to, err := Period(fromS, toS, uc.now())
	if err != nil {
		return nil, err
	}
	withTop := access.HasPermission(role, access.ReportsAdvanced)

	var (
		kpis  *repository.DashboardKPIs
		trend []repository.DailySales
		top   []repository.TopProduct
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		k, err := uc.repo.KPIs(gctx, from, to)
		if err != nil {
			return fmt.Errorf("dashboard: kpis: %w", err)
		}
		kpis = k
		return nil
	})
	g.Go(func() error {
		t, err := uc.repo.SalesTrend(gctx, from, to)
		if err != nil {
			return fmt.Errorf("dashboard: tendencia: %w", err)
		}
		trend = t
		return nil
	})
	if withTop {
		g.Go(func() error {
			t, err := uc.repo.TopProducts(gctx, from, to, dashboardTopProducts)
			if err != nil {
				return fmt.Errorf("dashboard: top productos: %w", err)
			}
			top = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		From:           from,
		To:             to,
		TotalProducts:  kpis.ProductCount,
		LowStockItems:  kpis.LowStockCount,
		TotalCustomers: kpis.CustomerCount,
		TotalSales:     kpis.SalesCount,
		ActiveOrders:   kpis.ActiveOrders,
		Revenue:        kpis.Revenue.Round(2),
		InventoryValue: kpis.InventoryValue.Round(2),
		SalesTrend:     make([]dto.DailySalesDTO, 0, len(trend)),
	}
	for _, d := range trend {
		out.SalesTrend = append(out.SalesTrend, dto.DailySalesDTO{
			Date:    d.Date.Format(time.DateOnly),
			Sales:   d.Sales,
			Revenue: d.Revenue.Round(2),
		})
	}
	if withTop {
		out.TopProducts = make([]dto.TopProductDTO, 0, len(top))
		for _, t := range top {
			out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
				ProductID: t.ProductID,
				SKU:       t.SKU,
				Name:      t.Name,
				UnitsSold: t.UnitsSold,
				Revenue:   t.Revenue.Round(2),
			})
		}
	}
	return out, nil
}
