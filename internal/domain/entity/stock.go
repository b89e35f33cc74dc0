package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el saldo actual de un producto en una bodega.
// A lo sumo una fila por (warehouse_id, product_id); UnitCost es el último
// costo escrito (last-write-wins, no promedio ponderado).
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	UpdatedAt   time.Time
}
