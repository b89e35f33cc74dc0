package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario. La cantidad siempre va con signo:
// positiva para entradas, negativa para salidas; el tipo nombra la causa.
const (
	MovementTypeIN         = "IN"         // entrada (recepción de mercancía)
	MovementTypeOUT        = "OUT"        // salida (venta)
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre bodegas
)

// Tablas de referencia conocidas para ReferenceType.
const (
	ReferenceGoodsReceipts = "goods_receipts"
)

// StockMovement representa una entrada inmutable del log de auditoría de
// inventario. Nunca se actualiza ni se elimina: el saldo de (bodega, producto)
// debe reconstruirse como la suma con signo de sus movimientos.
type StockMovement struct {
	ID            string
	ProductID     string
	WarehouseID   string
	Type          string
	Quantity      decimal.Decimal // con signo según la convención de arriba
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
	ReferenceID   string // id del documento que originó el movimiento
	ReferenceType string // tabla del documento (ej. goods_receipts)
	CreatedAt     time.Time
	CreatedBy     string
}
