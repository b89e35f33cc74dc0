package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// ReceiptHandler lecturas de recepciones y descarga del comprobante PDF.
type ReceiptHandler struct {
	uc *usecase.ReceiptQueryUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *usecase.ReceiptQueryUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// GetByID godoc
// @Summary      Detalle de una recepción (cabecera + líneas)
// @Tags         receipts
// @Produce      json
// @Param        id  path  string  true  "ID de la recepción"
// @Success      200  {object}  dto.Response{data=dto.ReceiptDTO}
// @Failure      404  {object}  dto.Response
// @Router       /api/receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	receipt, err := h.uc.GetReceipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("recepción consultada", receipt))
}

// GetPDF godoc
// @Summary      Comprobante de recepción en PDF
// @Tags         receipts
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la recepción"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Response
// @Router       /api/receipts/{id}/pdf [get]
func (h *ReceiptHandler) GetPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GetReceiptPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recepcion.pdf"`)
	return c.Send(pdfBytes)
}
