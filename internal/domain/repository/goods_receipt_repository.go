package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// GoodsReceiptRepository define el puerto de persistencia para recepciones de mercancía.
type GoodsReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.GoodsReceipt) error
	CreateItem(ctx context.Context, item *entity.GoodsReceiptItem) error
	GetByID(ctx context.Context, id string) (*entity.GoodsReceipt, error)
	ListItems(ctx context.Context, receiptID string) ([]*entity.GoodsReceiptItem, error)
}
