// Package pdf genera los documentos PDF de ventas con Maroto v2.
//
// Reporte de ventas (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período          │  Fecha de generación    │
//	│  RESUMEN: N° ventas / Ingresos                               │
//	│  TABLA: Fecha | Venta | Cliente | Estado | Pago | Total      │
//	└─────────────────────────────────────────────────────────────┘
//
// Comprobante de venta: cabecera, cliente, líneas, totales y QR con el id de la venta.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/serranotex/serrano-tex-ims/internal/application/analytics"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa analytics.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{now: time.Now} }

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

// SalesReport genera el reporte de ventas del período.
func (g *MarotoPDFGenerator) SalesReport(_ context.Context, r analytics.SalesReport) ([]byte, error) {
	m := newDocument("Reporte de ventas", r.Title)

	last := r.To.AddDate(0, 0, -1)
	m.AddRows(row.New(16).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("Reporte de ventas %s a %s", r.From.Format("02/01/2006"), last.Format("02/01/2006")),
				props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+g.now().Format("02/01/2006 15:04"),
				props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(10).Add(
		col.New(6).Add(text.New(fmt.Sprintf("Ventas: %d", r.Count), props.Text{Style: fontstyle.Bold, Size: 10, Top: 2})),
		col.New(6).Add(text.New("Ingresos: $"+formatMoney(r.Revenue),
			props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary})),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(headerRow([]headerCol{
		{"Fecha", 2, align.Left}, {"Venta", 2, align.Left}, {"Cliente", 3, align.Left},
		{"Estado", 2, align.Left}, {"Pago", 1, align.Left}, {"Total", 2, align.Right},
	}))
	if len(r.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin ventas en el período.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, s := range r.Rows {
		m.AddRows(row.New(6).Add(
			cell(s.CreatedAt.Format("02/01/2006"), 2, align.Left),
			cell(shortID(s.SaleID), 2, align.Left),
			cell(nonEmpty(s.CustomerName, "Mostrador"), 3, align.Left),
			cell(s.Status, 2, align.Left),
			cell(s.PaymentStatus, 1, align.Left),
			cell("$"+formatMoney(s.Total), 2, align.Right),
		))
	}
	return generate(m)
}

// SaleReceipt genera el comprobante de una venta.
func (g *MarotoPDFGenerator) SaleReceipt(_ context.Context, sale *entity.Sale, customer *entity.Customer, lines []analytics.ReceiptLine) ([]byte, error) {
	m := newDocument("Comprobante de venta", "Serrano Tex")

	m.AddRows(row.New(18).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Estado: "+sale.Status+"   |   Pago: "+sale.PaymentStatus,
				props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(shortID(sale.ID), props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2}),
			text.New("Fecha: "+sale.CreatedAt.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Right, Top: 10, Color: colorGray}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(headerRow([]headerCol{
		{"Cant.", 1, align.Center}, {"SKU", 2, align.Left}, {"Producto", 4, align.Left},
		{"Precio Unit.", 2, align.Right}, {"Subtotal", 3, align.Right},
	}))
	for _, l := range lines {
		m.AddRows(row.New(7).Add(
			cell(l.Quantity.String(), 1, align.Center),
			cell(l.SKU, 2, align.Left),
			cell(l.ProductName, 4, align.Left),
			cell("$"+formatMoney(l.UnitPrice), 2, align.Right),
			cell("$"+formatMoney(l.Subtotal), 3, align.Right),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))
	if sale.Notes != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Notas: "+sale.Notes, props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(row.New(40).Add(
		col.New(3).Add(code.NewQr(sale.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(text.New("Escanee el código para consultar la venta.",
			props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray})),
	))
	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

type headerCol struct {
	label string
	size  int
	align align.Type
}

func headerRow(cols []headerCol) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...)
}

func cell(s string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func customerRow(c *entity.Customer) core.Row {
	if c == nil {
		return row.New(10).Add(col.New(12).Add(
			text.New("CLIENTE: Mostrador", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
		))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Empresa: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(c.Company, "-"),
				nonEmpty(c.Email, "-"),
				nonEmpty(c.Phone, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func totalsRow(s *entity.Sale) core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("Descuento (%s%%):", s.Discount.String())),
			label(fmt.Sprintf("Impuesto (%s%%):", s.TaxRate.String())),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2}),
		),
		col.New(3).Add(
			value("$"+formatMoney(s.Subtotal)),
			value("-$"+formatMoney(s.DiscountTotal)),
			value("$"+formatMoney(s.TaxTotal)),
			text.New("$"+formatMoney(s.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return "#" + id[:8]
	}
	return "#" + id
}

// formatMoney 1234567.5 -> "1.234.567,50".
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	if d.IsNegative() {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	buf = append(buf, ',')
	return string(append(buf, frac...))
}
