package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
)

// ReportUseCase genera los PDF de ventas.
type ReportUseCase struct {
	dashboard repository.DashboardRepository
	sales     repository.SaleRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	generator PDFGenerator
	title     string
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso; title encabeza los reportes (nombre de la app).
func NewReportUseCase(
	dashboard repository.DashboardRepository,
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	generator PDFGenerator,
	title string,
) *ReportUseCase {
	return &ReportUseCase{
		dashboard: dashboard,
		sales:     sales,
		customers: customers,
		products:  products,
		generator: generator,
		title:     title,
		now:       time.Now,
	}
}

// SalesReportPDF reporte de ventas del período (mismas reglas de rango que el tablero).
func (uc *ReportUseCase) SalesReportPDF(ctx context.Context, fromS, toS string) (pdf []byte, filename string, err error) {
	from, to, err := Period(fromS, toS, uc.now())
	if err != nil {
		return nil, "", err
	}
	rows, err := uc.dashboard.SalesInRange(ctx, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: ventas: %w", err)
	}
	r := SalesReport{Title: uc.title, From: from, To: to, Rows: rows, Revenue: decimal.Zero}
	for _, row := range rows {
		if row.Status == entity.OrderStatusCancelled {
			continue
		}
		r.Count++
		r.Revenue = r.Revenue.Add(row.Total)
	}
	pdf, err = uc.generator.SalesReport(ctx, r)
	if err != nil {
		return nil, "", err
	}
	last := to.AddDate(0, 0, -1)
	return pdf, fmt.Sprintf("ventas_%s_%s.pdf", from.Format(time.DateOnly), last.Format(time.DateOnly)), nil
}

// SaleReceiptPDF comprobante de una venta. ErrNotFound si no existe.
func (uc *ReportUseCase) SaleReceiptPDF(ctx context.Context, saleID string) (pdf []byte, filename string, err error) {
	sale, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	var customer *entity.Customer
	if sale.CustomerID != "" {
		if customer, err = uc.customers.GetByID(ctx, sale.CustomerID); err != nil {
			return nil, "", fmt.Errorf("comprobante: obtener cliente: %w", err)
		}
	}
	lines := make([]ReceiptLine, 0, len(sale.Items))
	for _, it := range sale.Items {
		l := ReceiptLine{Quantity: it.Quantity, UnitPrice: it.UnitPrice, Subtotal: it.Subtotal, ProductName: it.ProductID}
		p, err := uc.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, "", fmt.Errorf("comprobante: obtener producto: %w", err)
		}
		if p != nil {
			l.SKU = p.SKU
			l.ProductName = p.Name
		}
		lines = append(lines, l)
	}
	pdf, err = uc.generator.SaleReceipt(ctx, sale, customer, lines)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("venta_%s.pdf", sale.ID), nil
}
