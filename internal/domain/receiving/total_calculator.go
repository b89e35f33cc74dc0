package receiving

import "github.com/shopspring/decimal"

// Line es una línea de recepción para efectos de cálculo (servicio de dominio).
type Line struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// LineSubtotal calcula el subtotal de una línea: Cantidad * PrecioUnitario.
func LineSubtotal(l Line) decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// OrderTotal calcula el total de la orden como la suma de los subtotales de línea.
// TotalOrden = Σ (Cantidad_i * PrecioUnitario_i)
func OrderTotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineSubtotal(l))
	}
	return total
}
