package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// StockQueryUseCase consultas de solo lectura sobre saldos y el log de movimientos.
type StockQueryUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.StockMovementRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(stockRepo repository.StockRepository, movRepo repository.StockMovementRepository) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// GetBalance devuelve el saldo actual de (producto, bodega). Si nunca hubo
// recepciones devuelve cantidad cero, no error.
func (uc *StockQueryUseCase) GetBalance(ctx context.Context, productID, warehouseID string) (*dto.StockBalanceDTO, error) {
	if productID == "" || warehouseID == "" {
		return nil, fmt.Errorf("%w: product_id y warehouse_id son requeridos", domain.ErrInvalidInput)
	}
	stock, err := uc.stockRepo.Get(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return &dto.StockBalanceDTO{
		ProductID:   stock.ProductID,
		WarehouseID: stock.WarehouseID,
		Quantity:    stock.Quantity,
		UnitCost:    stock.UnitCost,
		UpdatedAt:   stock.UpdatedAt,
	}, nil
}

// ListMovements lista el historial de movimientos por producto o por bodega.
func (uc *StockQueryUseCase) ListMovements(ctx context.Context, in dto.MovementHistoryRequest) ([]dto.MovementDTO, error) {
	if (in.ProductID == "") == (in.WarehouseID == "") {
		return nil, fmt.Errorf("%w: indicar product_id o warehouse_id (exactamente uno)", domain.ErrInvalidInput)
	}
	from, err := parseDate(in.From, "from")
	if err != nil {
		return nil, err
	}
	to, err := parseDate(in.To, "to")
	if err != nil {
		return nil, err
	}
	in.DefaultPage()

	var list []*entity.StockMovement
	if in.ProductID != "" {
		list, err = uc.movRepo.ListByProduct(ctx, in.ProductID, from, to, in.Limit, in.Offset)
	} else {
		list, err = uc.movRepo.ListByWarehouse(ctx, in.WarehouseID, from, to, in.Limit, in.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.MovementDTO, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementDTO{
			ID:            m.ID,
			ProductID:     m.ProductID,
			WarehouseID:   m.WarehouseID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			UnitCost:      m.UnitCost,
			TotalCost:     m.TotalCost,
			ReferenceID:   m.ReferenceID,
			ReferenceType: m.ReferenceType,
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
		})
	}
	return out, nil
}

func parseDate(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser una fecha ISO (2006-01-02)", domain.ErrInvalidInput, field)
	}
	return &d, nil
}
