package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/receiving"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReceiveStock *receiving.ReceiveStockUseCase
	StockQuery   *usecase.StockQueryUseCase
	ReceiptQuery *usecase.ReceiptQueryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Recepción de mercancía
	receivingHandler := NewReceivingHandler(deps.ReceiveStock)
	api.Post("/receiving", receivingHandler.ReceiveStock)

	// Saldos y movimientos
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockQuery)
	stock.Get("/", stockHandler.GetBalance)
	stock.Get("/movements", stockHandler.ListMovements)

	// Recepciones
	receipts := api.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptQuery)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Get("/:id/pdf", receiptHandler.GetPDF)
}
