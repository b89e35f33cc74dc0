package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/receiving"
)

// ReceivingHandler maneja las peticiones HTTP de recepción de mercancía.
type ReceivingHandler struct {
	uc *receiving.ReceiveStockUseCase
}

// NewReceivingHandler construye el handler.
func NewReceivingHandler(uc *receiving.ReceiveStockUseCase) *ReceivingHandler {
	return &ReceivingHandler{uc: uc}
}

// ReceiveStock godoc
// @Summary      Registrar recepción de mercancía
// @Description  Crea orden de compra + recepción y acredita el stock de la
//               bodega por cada línea, todo en una sola transacción.
// @Tags         receiving
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveStockRequest  true  "supplier_id, warehouse_id, created_by, items[]"
// @Success      201   {object}  dto.Response{data=dto.ReceiveStockResult}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/receiving [post]
func (h *ReceivingHandler) ReceiveStock(c *fiber.Ctx) error {
	var in dto.ReceiveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	result, err := h.uc.ReceiveStock(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("recepción registrada", result))
}
