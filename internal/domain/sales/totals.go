// Package sales calcula los totales de una venta (servicio de dominio, sin I/O).
package sales

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Line cantidad y precio unitario de una línea.
type Line struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Totals resultado del cálculo; todos los montos redondeados a 2 decimales.
type Totals struct {
	LineSubtotals []decimal.Decimal
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
}

// Calculate aplica el descuento (%) sobre el subtotal y el impuesto (%) sobre la base con descuento.
//
//	subtotal = Σ cantidad·precio
//	descuento = subtotal·discount/100
//	impuesto = (subtotal − descuento)·taxRate/100
//	total = subtotal − descuento + impuesto
func Calculate(lines []Line, discountPct, taxPct decimal.Decimal) Totals {
	t := Totals{LineSubtotals: make([]decimal.Decimal, 0, len(lines))}
	sum := decimal.Zero
	for _, l := range lines {
		sub := l.Quantity.Mul(l.UnitPrice).Round(2)
		t.LineSubtotals = append(t.LineSubtotals, sub)
		sum = sum.Add(sub)
	}
	t.Subtotal = sum
	t.DiscountTotal = sum.Mul(discountPct).Div(hundred).Round(2)
	base := sum.Sub(t.DiscountTotal)
	t.TaxTotal = base.Mul(taxPct).Div(hundred).Round(2)
	t.Total = base.Add(t.TaxTotal)
	return t
}
