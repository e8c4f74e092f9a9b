package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
)

// SalesReport datos del reporte de ventas de un período [From, To).
type SalesReport struct {
	Title   string
	From    time.Time
	To      time.Time
	Rows    []repository.SalesReportRow
	Count   int             // ventas no canceladas
	Revenue decimal.Decimal // suma de ventas no canceladas
}

// ReceiptLine línea del comprobante de venta con el nombre del producto resuelto.
type ReceiptLine struct {
	SKU         string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// PDFGenerator puerto de salida para los documentos PDF.
type PDFGenerator interface {
	SalesReport(ctx context.Context, r SalesReport) ([]byte, error)
	// SaleReceipt customer puede ser nil (venta de mostrador).
	SaleReceipt(ctx context.Context, sale *entity.Sale, customer *entity.Customer, lines []ReceiptLine) ([]byte, error)
}
