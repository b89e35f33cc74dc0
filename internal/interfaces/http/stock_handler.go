package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// StockHandler consultas de saldos y del log de movimientos.
type StockHandler struct {
	uc *usecase.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockQueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetBalance godoc
// @Summary      Saldo actual de un producto en una bodega
// @Tags         stock
// @Produce      json
// @Param        product_id    query  string  true  "Producto"
// @Param        warehouse_id  query  string  true  "Bodega"
// @Success      200  {object}  dto.Response{data=dto.StockBalanceDTO}
// @Failure      400  {object}  dto.Response
// @Router       /api/stock [get]
func (h *StockHandler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.uc.GetBalance(c.Context(), c.Query("product_id"), c.Query("warehouse_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("saldo consultado", balance))
}

// ListMovements godoc
// @Summary      Historial de movimientos por producto o bodega
// @Tags         stock
// @Produce      json
// @Param        product_id    query  string  false  "Producto (excluyente con warehouse_id)"
// @Param        warehouse_id  query  string  false  "Bodega (excluyente con product_id)"
// @Param        from          query  string  false  "Fecha ISO desde"
// @Param        to            query  string  false  "Fecha ISO hasta"
// @Success      200  {object}  dto.Response{data=[]dto.MovementDTO}
// @Failure      400  {object}  dto.Response
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var in dto.MovementHistoryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("parámetros inválidos"))
	}
	list, err := h.uc.ListMovements(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("movimientos consultados", fiber.Map{
		"total":     len(list),
		"movements": list,
	}))
}
