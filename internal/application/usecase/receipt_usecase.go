package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ReceiptItemForPDF línea enriquecida con datos del catálogo para el documento.
type ReceiptItemForPDF struct {
	SKU         string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptPDFGenerator puerto hacia el generador del comprobante de recepción.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		receipt *entity.GoodsReceipt,
		order *entity.PurchaseOrder,
		supplier *entity.Supplier,
		warehouse *entity.Warehouse,
		items []ReceiptItemForPDF,
	) ([]byte, error)
}

// ReceiptQueryUseCase lecturas de recepciones y generación del comprobante PDF.
type ReceiptQueryUseCase struct {
	receiptRepo   repository.GoodsReceiptRepository
	orderRepo     repository.PurchaseOrderRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	pdfGenerator  ReceiptPDFGenerator
}

// NewReceiptQueryUseCase construye el caso de uso.
func NewReceiptQueryUseCase(
	receiptRepo repository.GoodsReceiptRepository,
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	pdfGenerator ReceiptPDFGenerator,
) *ReceiptQueryUseCase {
	return &ReceiptQueryUseCase{
		receiptRepo:   receiptRepo,
		orderRepo:     orderRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		pdfGenerator:  pdfGenerator,
	}
}

// GetReceipt devuelve la cabecera y las líneas de una recepción.
func (uc *ReceiptQueryUseCase) GetReceipt(ctx context.Context, id string) (*dto.ReceiptDTO, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	receipt, err := uc.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, fmt.Errorf("%w: recepción %s", domain.ErrNotFound, id)
	}
	items, err := uc.receiptRepo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &dto.ReceiptDTO{
		ID:          receipt.ID,
		OrderID:     receipt.OrderID,
		ReceiveDate: receipt.ReceiveDate.Format(dateLayout),
		SupplierID:  receipt.SupplierID,
		WarehouseID: receipt.WarehouseID,
		ReceivedBy:  receipt.ReceivedBy,
		Notes:       receipt.Notes,
		Items:       make([]dto.ReceiptItemDTO, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.ReceiptItemDTO{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out, nil
}

// GetReceiptPDF arma el comprobante de recepción con datos del catálogo y lo
// renderiza con el generador inyectado.
func (uc *ReceiptQueryUseCase) GetReceiptPDF(ctx context.Context, id string) ([]byte, error) {
	receipt, err := uc.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, fmt.Errorf("%w: recepción %s", domain.ErrNotFound, id)
	}
	order, err := uc.orderRepo.GetByID(ctx, receipt.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, receipt.OrderID)
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, receipt.SupplierID)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, receipt.WarehouseID)
	if err != nil {
		return nil, err
	}

	lines, err := uc.receiptRepo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	items := make([]ReceiptItemForPDF, 0, len(lines))
	for _, line := range lines {
		item := ReceiptItemForPDF{
			ProductName: line.ProductID, // fallback si el producto ya no existe en catálogo
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Quantity.Mul(line.UnitPrice),
		}
		if product, err := uc.productRepo.GetByID(ctx, line.ProductID); err == nil && product != nil {
			item.SKU = product.SKU
			item.ProductName = product.Name
		}
		items = append(items, item)
	}

	return uc.pdfGenerator.GenerateReceiptPDF(ctx, receipt, order, supplier, warehouse, items)
}
