package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/access"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
)

type mockDashboardRepo struct{ mock.Mock }

func (m *mockDashboardRepo) KPIs(ctx context.Context, from, to time.Time) (*repository.DashboardKPIs, error) {
	args := m.Called(ctx, from, to)
	k, _ := args.Get(0).(*repository.DashboardKPIs)
	return k, args.Error(1)
}

func (m *mockDashboardRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProduct, error) {
	args := m.Called(ctx, from, to, limit)
	t, _ := args.Get(0).([]repository.TopProduct)
	return t, args.Error(1)
}

func (m *mockDashboardRepo) SalesTrend(ctx context.Context, from, to time.Time) ([]repository.DailySales, error) {
	args := m.Called(ctx, from, to)
	d, _ := args.Get(0).([]repository.DailySales)
	return d, args.Error(1)
}

func (m *mockDashboardRepo) SalesInRange(ctx context.Context, from, to time.Time) ([]repository.SalesReportRow, error) {
	args := m.Called(ctx, from, to)
	r, _ := args.Get(0).([]repository.SalesReportRow)
	return r, args.Error(1)
}

var fixedNow = time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

func day(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

func TestPeriod(t *testing.T) {
	from, to, err := Period("", "", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, day(16), to)
	assert.Equal(t, day(16).AddDate(0, 0, -30), from)

	from, to, err = Period("2026-03-01", "2026-03-10", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, day(1), from)
	assert.Equal(t, day(11), to)

	_, _, err = Period("2026-03-10", "2026-03-01", fixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = Period("marzo", "", fixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func newDashboard(repo *mockDashboardRepo) *DashboardUseCase {
	uc := NewDashboardUseCase(repo)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestGetDashboard_AdminVeTopProductos(t *testing.T) {
	repo := new(mockDashboardRepo)
	repo.On("KPIs", mock.Anything, day(1), day(11)).Return(&repository.DashboardKPIs{
		ProductCount: 12, LowStockCount: 2, SalesCount: 4, Revenue: decimal.RequireFromString("1000.456"),
	}, nil)
	repo.On("SalesTrend", mock.Anything, day(1), day(11)).Return([]repository.DailySales{
		{Date: day(2), Sales: 4, Revenue: decimal.NewFromInt(1000)},
	}, nil)
	repo.On("TopProducts", mock.Anything, day(1), day(11), 5).Return([]repository.TopProduct{
		{ProductID: "p1", SKU: "LIN-001", UnitsSold: decimal.NewFromInt(7), Revenue: decimal.NewFromInt(350)},
	}, nil)

	out, err := newDashboard(repo).GetDashboard(context.Background(), access.RoleAdmin, "2026-03-01", "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 12, out.TotalProducts)
	assert.Equal(t, "1000.46", out.Revenue.String())
	assert.Equal(t, "2026-03-02", out.SalesTrend[0].Date)
	require.Len(t, out.TopProducts, 1)
	repo.AssertExpectations(t)
}

func TestGetDashboard_ViewerSinTopProductos(t *testing.T) {
	repo := new(mockDashboardRepo)
	repo.On("KPIs", mock.Anything, mock.Anything, mock.Anything).Return(&repository.DashboardKPIs{}, nil)
	repo.On("SalesTrend", mock.Anything, mock.Anything, mock.Anything).Return([]repository.DailySales{}, nil)

	out, err := newDashboard(repo).GetDashboard(context.Background(), access.RoleViewer, "", "")
	require.NoError(t, err)
	assert.Nil(t, out.TopProducts)
	repo.AssertNotCalled(t, "TopProducts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDashboard_ErrorDeConsulta(t *testing.T) {
	repo := new(mockDashboardRepo)
	boom := errors.New("conexión cerrada")
	repo.On("KPIs", mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
	repo.On("SalesTrend", mock.Anything, mock.Anything, mock.Anything).Return([]repository.DailySales{}, nil)

	_, err := newDashboard(repo).GetDashboard(context.Background(), access.RoleEmployee, "", "")
	assert.ErrorIs(t, err, boom)
}
