package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el saldo actual de un producto en una bodega. Sin fila = saldo cero.
func (r *StockRepo) Get(ctx context.Context, productID, warehouseID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, unit_cost, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UnitCost, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero, UnitCost: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// AddQuantity suma delta al saldo en un solo statement atómico: incrementa si
// la fila existe, inserta si no. El incremento en el UPDATE evita el lost
// update entre transacciones concurrentes sin necesidad de SELECT FOR UPDATE.
// unit_cost se sobreescribe con el valor entrante (last-write-wins).
func (r *StockRepo) AddQuantity(ctx context.Context, productID, warehouseID string, delta, unitCost decimal.Decimal) error {
	query := `
		INSERT INTO stock (product_id, warehouse_id, quantity, unit_cost, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (warehouse_id, product_id)
		DO UPDATE SET quantity = stock.quantity + EXCLUDED.quantity,
		              unit_cost = EXCLUDED.unit_cost,
		              updated_at = now()`
	_, err := r.q.Exec(ctx, query, productID, warehouseID, delta, unitCost)
	if err != nil {
		return fmt.Errorf("add stock quantity: %w", err)
	}
	return nil
}
