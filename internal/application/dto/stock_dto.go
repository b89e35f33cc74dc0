package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalanceDTO saldo actual de un producto en una bodega.
type StockBalanceDTO struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MovementHistoryRequest filtros para consultar el log de movimientos.
// Exactamente uno de ProductID/WarehouseID debe venir informado.
type MovementHistoryRequest struct {
	ProductID   string `query:"product_id"`
	WarehouseID string `query:"warehouse_id"`
	From        string `query:"from"` // fecha ISO opcional
	To          string `query:"to"`   // fecha ISO opcional
	PageRequest
}

// MovementDTO una entrada del log de movimientos.
type MovementDTO struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	WarehouseID   string          `json:"warehouse_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	ReferenceType string          `json:"reference_type,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by,omitempty"`
}

// ReceiptDTO cabecera + líneas de una recepción para GET /api/receipts/:id.
type ReceiptDTO struct {
	ID          string           `json:"id"`
	OrderID     string           `json:"order_id"`
	ReceiveDate string           `json:"receive_date"`
	SupplierID  string           `json:"supplier_id"`
	WarehouseID string           `json:"warehouse_id"`
	ReceivedBy  string           `json:"received_by"`
	Notes       string           `json:"notes,omitempty"`
	Items       []ReceiptItemDTO `json:"items"`
}

// ReceiptItemDTO una línea recibida.
type ReceiptItemDTO struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
