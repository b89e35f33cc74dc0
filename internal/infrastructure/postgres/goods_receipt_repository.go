package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.GoodsReceiptRepository = (*GoodsReceiptRepo)(nil)

// GoodsReceiptRepo implementación de GoodsReceiptRepository sobre PostgreSQL (usable con pool o tx).
type GoodsReceiptRepo struct {
	q Querier
}

// NewGoodsReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGoodsReceiptRepository(q Querier) *GoodsReceiptRepo {
	return &GoodsReceiptRepo{q: q}
}

// Create persiste la cabecera de la recepción.
func (r *GoodsReceiptRepo) Create(ctx context.Context, receipt *entity.GoodsReceipt) error {
	query := `
		INSERT INTO goods_receipts (id, order_id, receive_date, supplier_id, warehouse_id, received_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	notes := (*string)(nil)
	if receipt.Notes != "" {
		notes = &receipt.Notes
	}
	_, err := r.q.Exec(ctx, query,
		receipt.ID, receipt.OrderID, receipt.ReceiveDate, receipt.SupplierID,
		receipt.WarehouseID, receipt.ReceivedBy, notes, receipt.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: referencia inválida en recepción", domain.ErrNotFound)
		}
		return fmt.Errorf("insert goods receipt: %w", err)
	}
	return nil
}

// CreateItem persiste una línea recibida. La cabecera debe existir ya en la misma tx.
func (r *GoodsReceiptRepo) CreateItem(ctx context.Context, item *entity.GoodsReceiptItem) error {
	query := `
		INSERT INTO goods_receipt_items (id, receipt_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ReceiptID, item.ProductID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: referencia inválida en ítem de recepción", domain.ErrNotFound)
		}
		return fmt.Errorf("insert goods receipt item: %w", err)
	}
	return nil
}

// GetByID obtiene una recepción por ID.
func (r *GoodsReceiptRepo) GetByID(ctx context.Context, id string) (*entity.GoodsReceipt, error) {
	query := `
		SELECT id, order_id, receive_date, supplier_id, warehouse_id, received_by, notes, created_at
		FROM goods_receipts WHERE id = $1`
	var g entity.GoodsReceipt
	var notes *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.OrderID, &g.ReceiveDate, &g.SupplierID, &g.WarehouseID,
		&g.ReceivedBy, &notes, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goods receipt: %w", err)
	}
	if notes != nil {
		g.Notes = *notes
	}
	return &g, nil
}

// ListItems lista las líneas de una recepción en orden de inserción.
func (r *GoodsReceiptRepo) ListItems(ctx context.Context, receiptID string) ([]*entity.GoodsReceiptItem, error) {
	query := `
		SELECT id, receipt_id, product_id, quantity, unit_price
		FROM goods_receipt_items WHERE receipt_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list goods receipt items: %w", err)
	}
	defer rows.Close()
	var list []*entity.GoodsReceiptItem
	for rows.Next() {
		var it entity.GoodsReceiptItem
		if err := rows.Scan(&it.ID, &it.ReceiptID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan goods receipt item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
