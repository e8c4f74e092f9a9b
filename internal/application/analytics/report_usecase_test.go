package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/serranotex/serrano-tex-ims/internal/application/apptest"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
)

type mockPDF struct{ mock.Mock }

func (m *mockPDF) SalesReport(ctx context.Context, r SalesReport) ([]byte, error) {
	args := m.Called(ctx, r)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockPDF) SaleReceipt(ctx context.Context, sale *entity.Sale, customer *entity.Customer, lines []ReceiptLine) ([]byte, error) {
	args := m.Called(ctx, sale, customer, lines)
	return args.Get(0).([]byte), args.Error(1)
}

func TestSalesReportPDF_ExcluyeCanceladasDelResumen(t *testing.T) {
	repo := new(mockDashboardRepo)
	repo.On("SalesInRange", mock.Anything, day(1), day(11)).Return([]repository.SalesReportRow{
		{SaleID: "s1", Status: entity.OrderStatusDelivered, Total: decimal.NewFromInt(100)},
		{SaleID: "s2", Status: entity.OrderStatusCancelled, Total: decimal.NewFromInt(900)},
		{SaleID: "s3", Status: entity.OrderStatusPending, Total: decimal.NewFromInt(50)},
	}, nil)
	gen := new(mockPDF)
	gen.On("SalesReport", mock.Anything, mock.MatchedBy(func(r SalesReport) bool {
		return r.Count == 2 && r.Revenue.Equal(decimal.NewFromInt(150)) && len(r.Rows) == 3 && r.Title == "Serrano Tex"
	})).Return([]byte("%PDF"), nil)

	s := apptest.NewStore()
	uc := NewReportUseCase(repo, apptest.SaleRepo{S: s}, apptest.CustomerRepo{S: s}, apptest.ProductRepo{S: s}, gen, "Serrano Tex")
	uc.now = func() time.Time { return fixedNow }

	pdf, name, err := uc.SalesReportPDF(context.Background(), "2026-03-01", "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), pdf)
	assert.Equal(t, "ventas_2026-03-01_2026-03-10.pdf", name)
	gen.AssertExpectations(t)
}

func TestSaleReceiptPDF(t *testing.T) {
	s := apptest.NewStore()
	s.Products["p1"] = entity.Product{ID: "p1", SKU: "LIN-001", Name: "Lino"}
	s.Customers["c1"] = entity.Customer{ID: "c1", Name: "Textiles Andinos"}
	s.Sales["s1"] = entity.Sale{ID: "s1", CustomerID: "c1", Items: []entity.SaleItem{
		{ProductID: "p1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(5), Subtotal: decimal.NewFromInt(10)},
	}}
	gen := new(mockPDF)
	gen.On("SaleReceipt", mock.Anything, mock.Anything,
		mock.MatchedBy(func(c *entity.Customer) bool { return c != nil && c.Name == "Textiles Andinos" }),
		mock.MatchedBy(func(l []ReceiptLine) bool { return len(l) == 1 && l[0].SKU == "LIN-001" && l[0].ProductName == "Lino" }),
	).Return([]byte("%PDF"), nil)

	uc := NewReportUseCase(new(mockDashboardRepo), apptest.SaleRepo{S: s}, apptest.CustomerRepo{S: s}, apptest.ProductRepo{S: s}, gen, "Serrano Tex")
	_, name, err := uc.SaleReceiptPDF(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "venta_s1.pdf", name)

	_, _, err = uc.SaleReceiptPDF(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
