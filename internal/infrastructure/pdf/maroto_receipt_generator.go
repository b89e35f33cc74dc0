// Package pdf implementa la generación del comprobante de recepción de
// mercancía (documento interno de bodega).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comprobante de Recepción │ N° + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre + NIT + contacto                         │
//	│  BODEGA: Nombre + dirección │ Recibido por                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Descripción | Cant | P.Unit | Subtotal        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE LA ORDEN                                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appusecase "github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa usecase.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	receipt *entity.GoodsReceipt,
	order *entity.PurchaseOrder,
	supplier *entity.Supplier,
	warehouse *entity.Warehouse,
	items []appusecase.ReceiptItemForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Recepción", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(supplier))
	m.AddRows(warehouseRow(receipt, warehouse))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y N° recepción + fecha (der).
func headerRow(receipt *entity.GoodsReceipt) core.Row {
	fecha := receipt.ReceiveDate.Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE RECEPCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Orden: "+receipt.OrderID, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Recepción N° "+receipt.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{Size: 9, Align: align.Right, Top: 8}),
		),
	)
}

// supplierRow datos del proveedor.
func supplierRow(supplier *entity.Supplier) core.Row {
	name, nit, contact := "-", "-", "-"
	if supplier != nil {
		name = supplier.Name
		nit = supplier.NIT
		contact = supplier.Phone + " " + supplier.Email
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROVEEDOR: "+name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New("NIT: "+nit+"  │  "+contact, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// warehouseRow datos de la bodega destino y quién recibió.
func warehouseRow(receipt *entity.GoodsReceipt, warehouse *entity.Warehouse) core.Row {
	name, address := "-", "-"
	if warehouse != nil {
		name = warehouse.Name
		address = warehouse.Address
	}
	return row.New(12).Add(
		col.New(8).Add(
			text.New("BODEGA: "+name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New(address, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Recibido por: "+receipt.ReceivedBy, props.Text{Size: 8, Align: align.Right, Top: 3}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	boldRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(2).Add(text.New("SKU", bold)),
		col.New(4).Add(text.New("Descripción", bold)),
		col.New(2).Add(text.New("Cantidad", boldRight)),
		col.New(2).Add(text.New("P. Unitario", boldRight)),
		col.New(2).Add(text.New("Subtotal", boldRight)),
	)
}

func tableItemRows(items []appusecase.ReceiptItemForPDF) []core.Row {
	normal := props.Text{Size: 8}
	right := props.Text{Size: 8, Align: align.Right}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(it.SKU, normal)),
			col.New(4).Add(text.New(it.ProductName, normal)),
			col.New(2).Add(text.New(it.Quantity.String(), right)),
			col.New(2).Add(text.New(it.UnitPrice.StringFixed(2), right)),
			col.New(2).Add(text.New(it.Subtotal.StringFixed(2), right)),
		))
	}
	return rows
}

func totalRow(order *entity.PurchaseOrder) core.Row {
	total := "-"
	if order != nil {
		total = order.TotalAmount.StringFixed(2)
	}
	return row.New(9).Add(
		col.New(8),
		col.New(4).Add(
			text.New("TOTAL: "+total, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}
