package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder representa la cabecera de una orden de compra a un proveedor.
// Se crea una vez por recepción y es inmutable después de creada.
type PurchaseOrder struct {
	ID          string
	SupplierID  string
	OrderDate   time.Time
	TotalAmount decimal.Decimal // suma de Quantity * UnitPrice de todos los ítems
	CreatedBy   string
	CreatedAt   time.Time
}

// PurchaseOrderItem representa una línea de la orden de compra. Nunca se muta después de creada.
type PurchaseOrderItem struct {
	ID         string
	OrderID    string
	ProductID  string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // Quantity * UnitPrice
}
