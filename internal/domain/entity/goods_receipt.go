package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoodsReceipt representa el evento físico de llegada de mercancía a una bodega
// (1:1 con PurchaseOrder en el flujo de recepción).
type GoodsReceipt struct {
	ID          string
	OrderID     string
	ReceiveDate time.Time
	SupplierID  string
	WarehouseID string
	ReceivedBy  string
	Notes       string
	CreatedAt   time.Time
}

// GoodsReceiptItem refleja una línea recibida físicamente; permite auditoría
// independiente aunque la orden se reorganice.
type GoodsReceiptItem struct {
	ID        string
	ReceiptID string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}
