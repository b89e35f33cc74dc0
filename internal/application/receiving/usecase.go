package receiving

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	domreceiving "github.com/jhoicas/almacen-api/internal/domain/receiving"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReceiveStockUseCase orquesta la recepción de mercancía de forma transaccional:
// orden de compra + recepción + por cada línea (ítem de orden, ítem de
// recepción, incremento de saldo, movimiento de auditoría), todo con
// Commit/Rollback. NO es idempotente: reenviar el mismo payload crea una
// segunda pareja orden/recepción y vuelve a sumar el stock.
type ReceiveStockUseCase struct {
	txRunner      TxRunner
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	validate      *validator.Validate
}

// NewReceiveStockUseCase construye el caso de uso.
func NewReceiveStockUseCase(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
) *ReceiveStockUseCase {
	return &ReceiveStockUseCase{
		txRunner:      txRunner,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		validate:      newValidator(),
	}
}

// newValidator configura validator/v10: nombres de campo desde el tag json y
// soporte de decimal.Decimal como número (para required/gt).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ReceiveStock valida la entrada, verifica proveedor/bodega/productos y ejecuta
// la transacción de recepción. Cualquier error después de iniciada la tx
// produce rollback total: ninguna fila queda visible.
func (uc *ReceiveStockUseCase) ReceiveStock(ctx context.Context, in dto.ReceiveStockRequest) (*dto.ReceiveStockResult, error) {
	if err := uc.validateRequest(in); err != nil {
		return nil, err
	}

	orderDate, err := parseDateOrToday(in.OrderDate, "order_date")
	if err != nil {
		return nil, err
	}
	receiveDate, err := parseDateOrToday(in.ReceiveDate, "receive_date")
	if err != nil {
		return nil, err
	}

	// Verificación de existencia antes de abrir la transacción (solo lecturas).
	if err := uc.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	lines := make([]domreceiving.Line, len(in.Items))
	for i, item := range in.Items {
		lines[i] = domreceiving.Line{Quantity: item.Quantity, UnitPrice: item.UnitPrice}
	}
	totalAmount := domreceiving.OrderTotal(lines)

	now := time.Now()
	orderID := uuid.New().String()
	receiveID := uuid.New().String()

	order := &entity.PurchaseOrder{
		ID:          orderID,
		SupplierID:  in.SupplierID,
		OrderDate:   orderDate,
		TotalAmount: totalAmount,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
	}
	receipt := &entity.GoodsReceipt{
		ID:          receiveID,
		OrderID:     orderID,
		ReceiveDate: receiveDate,
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		ReceivedBy:  in.CreatedBy,
		Notes:       in.Notes,
		CreatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		receiptRepo repository.GoodsReceiptRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Cabeceras antes que hijos, dentro de la misma transacción.
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		if err := receiptRepo.Create(ctx, receipt); err != nil {
			return err
		}

		// Líneas en orden de envío. El incremento de saldo es un statement
		// atómico, así dos líneas del mismo producto acumulan correctamente.
		for _, item := range in.Items {
			subtotal := item.Quantity.Mul(item.UnitPrice)
			if err := orderRepo.CreateItem(ctx, &entity.PurchaseOrderItem{
				ID:         uuid.New().String(),
				OrderID:    orderID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				TotalPrice: subtotal,
			}); err != nil {
				return err
			}
			if err := receiptRepo.CreateItem(ctx, &entity.GoodsReceiptItem{
				ID:        uuid.New().String(),
				ReceiptID: receiveID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			}); err != nil {
				return err
			}
			if err := stockRepo.AddQuantity(ctx, item.ProductID, in.WarehouseID, item.Quantity, item.UnitPrice); err != nil {
				return err
			}
			if err := movRepo.Create(ctx, &entity.StockMovement{
				ID:            uuid.New().String(),
				ProductID:     item.ProductID,
				WarehouseID:   in.WarehouseID,
				Type:          entity.MovementTypeIN,
				Quantity:      item.Quantity, // entrada: cantidad positiva
				UnitCost:      item.UnitPrice,
				TotalCost:     subtotal,
				ReferenceID:   receiveID,
				ReferenceType: entity.ReferenceGoodsReceipts,
				CreatedAt:     now,
				CreatedBy:     in.CreatedBy,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.ReceiveStockResult{
		OrderID:     orderID,
		ReceiveID:   receiveID,
		OrderDate:   orderDate.Format(dateLayout),
		ReceiveDate: receiveDate.Format(dateLayout),
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		TotalAmount: totalAmount,
	}, nil
}

// validateRequest valida forma y positividad; reporta el primer campo inválido.
func (uc *ReceiveStockUseCase) validateRequest(in dto.ReceiveStockRequest) error {
	if err := uc.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fieldMessage(verrs[0]))
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// fieldMessage arma un mensaje legible a partir del primer error de campo.
func fieldMessage(fe validator.FieldError) string {
	// Namespace llega como "ReceiveStockRequest.items[0].quantity"; quitamos el struct raíz.
	path := fe.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("campo requerido: %s", path)
	case "min":
		return fmt.Sprintf("%s no puede estar vacío", path)
	case "gt":
		return fmt.Sprintf("%s debe ser mayor a cero", path)
	default:
		return fmt.Sprintf("campo inválido: %s", path)
	}
}

// checkReferences verifica que proveedor, bodega y todos los productos existan.
func (uc *ReceiveStockUseCase) checkReferences(ctx context.Context, in dto.ReceiveStockRequest) error {
	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, in.SupplierID)
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, in.WarehouseID)
	}
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
		}
	}
	return nil
}

// parseDateOrToday interpreta una fecha ISO; vacía = fecha actual.
func parseDateOrToday(s, field string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe ser una fecha ISO (2006-01-02)", domain.ErrInvalidInput, field)
	}
	return d, nil
}
