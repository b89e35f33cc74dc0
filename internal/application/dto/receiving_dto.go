package dto

import "github.com/shopspring/decimal"

// ReceiveStockRequest body para POST /api/receiving.
// order_date y receive_date son fechas ISO (2006-01-02); vacías = hoy.
type ReceiveStockRequest struct {
	SupplierID  string             `json:"supplier_id" validate:"required"`
	WarehouseID string             `json:"warehouse_id" validate:"required"`
	CreatedBy   string             `json:"created_by" validate:"required"`
	OrderDate   string             `json:"order_date,omitempty"`
	ReceiveDate string             `json:"receive_date,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	Items       []ReceiveStockItem `json:"items" validate:"required,min=1,dive"`
}

// ReceiveStockItem línea de recepción: producto, cantidad y precio unitario,
// ambos estrictamente positivos.
type ReceiveStockItem struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required,gt=0"`
}

// ReceiveStockResult data del envelope de éxito de la recepción.
type ReceiveStockResult struct {
	OrderID     string          `json:"order_id"`
	ReceiveID   string          `json:"receive_id"`
	OrderDate   string          `json:"order_date"`
	ReceiveDate string          `json:"receive_date"`
	SupplierID  string          `json:"supplier_id"`
	WarehouseID string          `json:"warehouse_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
