package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar el saldo por bodega+producto.
type StockRepository interface {
	Get(ctx context.Context, productID, warehouseID string) (*entity.Stock, error)
	// AddQuantity suma delta al saldo de (producto, bodega) en un solo statement
	// atómico (upsert con incremento), sobreescribiendo unit_cost con el valor
	// entrante. Debe ejecutarse sobre la transacción del caller.
	AddQuantity(ctx context.Context, productID, warehouseID string, delta, unitCost decimal.Decimal) error
}
