// Package inventory contiene servicios de dominio puros del motor de inventario.
package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost calcula el costo promedio ponderado tras una entrada de mercancía.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Si el stock resultante no es positivo devuelve cero.
func WeightedAverageCost(stock, cost, inQty, inCost decimal.Decimal) decimal.Decimal {
	sum := stock.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stock.Mul(cost).Add(inQty.Mul(inCost))
	return num.Div(sum).Round(4)
}
