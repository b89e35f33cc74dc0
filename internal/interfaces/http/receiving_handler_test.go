package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/receiving"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia en memoria para los tests de handler: suficiente para verificar
// status codes y el envelope {status, message, data}.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSupplier  = "sup-100"
	testWarehouse = "bod-100"
	testProduct   = "prod-100"
)

type testState struct {
	mu           sync.Mutex
	orders       map[string]*entity.PurchaseOrder
	orderItems   []entity.PurchaseOrderItem
	receipts     map[string]*entity.GoodsReceipt
	receiptItems []entity.GoodsReceiptItem
	stock        map[string]entity.Stock
	movements    []entity.StockMovement
}

func newTestState() *testState {
	return &testState{
		orders:   make(map[string]*entity.PurchaseOrder),
		receipts: make(map[string]*entity.GoodsReceipt),
		stock:    make(map[string]entity.Stock),
	}
}

type stubOrders struct{ st *testState }

func (r *stubOrders) Create(_ context.Context, o *entity.PurchaseOrder) error {
	cp := *o
	r.st.orders[o.ID] = &cp
	return nil
}

func (r *stubOrders) CreateItem(_ context.Context, it *entity.PurchaseOrderItem) error {
	r.st.orderItems = append(r.st.orderItems, *it)
	return nil
}

func (r *stubOrders) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.st.orders[id], nil
}

func (r *stubOrders) ListItems(_ context.Context, orderID string) ([]*entity.PurchaseOrderItem, error) {
	var out []*entity.PurchaseOrderItem
	for i := range r.st.orderItems {
		if r.st.orderItems[i].OrderID == orderID {
			out = append(out, &r.st.orderItems[i])
		}
	}
	return out, nil
}

type stubReceipts struct{ st *testState }

func (r *stubReceipts) Create(_ context.Context, g *entity.GoodsReceipt) error {
	cp := *g
	r.st.receipts[g.ID] = &cp
	return nil
}

func (r *stubReceipts) CreateItem(_ context.Context, it *entity.GoodsReceiptItem) error {
	r.st.receiptItems = append(r.st.receiptItems, *it)
	return nil
}

func (r *stubReceipts) GetByID(_ context.Context, id string) (*entity.GoodsReceipt, error) {
	return r.st.receipts[id], nil
}

func (r *stubReceipts) ListItems(_ context.Context, receiptID string) ([]*entity.GoodsReceiptItem, error) {
	var out []*entity.GoodsReceiptItem
	for i := range r.st.receiptItems {
		if r.st.receiptItems[i].ReceiptID == receiptID {
			out = append(out, &r.st.receiptItems[i])
		}
	}
	return out, nil
}

type stubStock struct{ st *testState }

func (r *stubStock) Get(_ context.Context, productID, warehouseID string) (*entity.Stock, error) {
	if s, ok := r.st.stock[warehouseID+"|"+productID]; ok {
		return &s, nil
	}
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero, UnitCost: decimal.Zero}, nil
}

func (r *stubStock) AddQuantity(_ context.Context, productID, warehouseID string, delta, unitCost decimal.Decimal) error {
	k := warehouseID + "|" + productID
	s, ok := r.st.stock[k]
	if !ok {
		s = entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}
	}
	s.Quantity = s.Quantity.Add(delta)
	s.UnitCost = unitCost
	s.UpdatedAt = time.Now()
	r.st.stock[k] = s
	return nil
}

type stubMovements struct{ st *testState }

func (r *stubMovements) Create(_ context.Context, m *entity.StockMovement) error {
	r.st.movements = append(r.st.movements, *m)
	return nil
}

func (r *stubMovements) ListByProduct(_ context.Context, productID string, _, _ *time.Time, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range r.st.movements {
		if r.st.movements[i].ProductID == productID {
			out = append(out, &r.st.movements[i])
		}
	}
	return out, nil
}

func (r *stubMovements) ListByWarehouse(_ context.Context, warehouseID string, _, _ *time.Time, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range r.st.movements {
		if r.st.movements[i].WarehouseID == warehouseID {
			out = append(out, &r.st.movements[i])
		}
	}
	return out, nil
}

// stubTx no necesita rollback aquí: los tests de handler solo ejecutan caminos
// donde la transacción completa tiene éxito o falla antes de abrirse.
type stubTx struct{ st *testState }

func (r *stubTx) Run(_ context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	receiptRepo repository.GoodsReceiptRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	return fn(&stubOrders{r.st}, &stubReceipts{r.st}, &stubStock{r.st}, &stubMovements{r.st})
}

type stubSuppliers map[string]*entity.Supplier

func (f stubSuppliers) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return f[id], nil
}

type stubWarehouses map[string]*entity.Warehouse

func (f stubWarehouses) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return f[id], nil
}

type stubProducts map[string]*entity.Product

func (f stubProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f[id], nil
}

type stubPDF struct{}

func (stubPDF) GenerateReceiptPDF(
	_ context.Context,
	_ *entity.GoodsReceipt,
	_ *entity.PurchaseOrder,
	_ *entity.Supplier,
	_ *entity.Warehouse,
	_ []usecase.ReceiptItemForPDF,
) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

// buildTestApp levanta la app Fiber completa con el router real sobre la
// persistencia en memoria.
func buildTestApp() (*fiber.App, *testState) {
	st := newTestState()
	suppliers := stubSuppliers{testSupplier: {ID: testSupplier, Name: "Proveedor Test"}}
	warehouses := stubWarehouses{testWarehouse: {ID: testWarehouse, Name: "Bodega Test"}}
	products := stubProducts{testProduct: {ID: testProduct, SKU: "SKU-100", Name: "Producto Test"}}

	receiveUC := receiving.NewReceiveStockUseCase(&stubTx{st}, suppliers, warehouses, products)
	stockUC := usecase.NewStockQueryUseCase(&stubStock{st}, &stubMovements{st})
	receiptUC := usecase.NewReceiptQueryUseCase(
		&stubReceipts{st}, &stubOrders{st}, suppliers, warehouses, products, stubPDF{},
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ReceiveStock: receiveUC,
		StockQuery:   stockUC,
		ReceiptQuery: receiptUC,
	})
	return app, st
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func receivingBody() fiber.Map {
	return fiber.Map{
		"supplier_id":  testSupplier,
		"warehouse_id": testWarehouse,
		"created_by":   "user-100",
		"items": []fiber.Map{
			{"product_id": testProduct, "quantity": "5", "unit_price": "1200.50"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/receiving
// ──────────────────────────────────────────────────────────────────────────────

func TestReceivingHandler_Creado201(t *testing.T) {
	app, st := buildTestApp()

	resp := postJSON(t, app, "/api/receiving", receivingBody())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "recepción registrada", env.Message)

	var data struct {
		OrderID     string          `json:"order_id"`
		ReceiveID   string          `json:"receive_id"`
		SupplierID  string          `json:"supplier_id"`
		WarehouseID string          `json:"warehouse_id"`
		TotalAmount decimal.Decimal `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.OrderID)
	assert.NotEmpty(t, data.ReceiveID)
	assert.Equal(t, testSupplier, data.SupplierID)
	assert.Equal(t, testWarehouse, data.WarehouseID)
	assert.True(t, data.TotalAmount.Equal(decimal.RequireFromString("6002.50")))

	assert.Len(t, st.orders, 1)
	assert.Len(t, st.receipts, 1)
	assert.Len(t, st.movements, 1)
}

func TestReceivingHandler_Validacion400(t *testing.T) {
	app, st := buildTestApp()

	body := receivingBody()
	delete(body, "supplier_id")
	resp := postJSON(t, app, "/api/receiving", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "supplier_id")
	assert.Nil(t, env.Data, "un error no debe incluir data")

	assert.Empty(t, st.orders, "no debe persistirse nada ante un 400")
	assert.Empty(t, st.movements)
}

func TestReceivingHandler_BodegaInexistente404(t *testing.T) {
	app, st := buildTestApp()

	body := receivingBody()
	body["warehouse_id"] = "bod-fantasma"
	resp := postJSON(t, app, "/api/receiving", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "bod-fantasma")
	assert.Empty(t, st.orders)
}

func TestReceivingHandler_CuerpoMalformado400(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/receiving", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "error", env.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/stock y /api/stock/movements
// ──────────────────────────────────────────────────────────────────────────────

func TestStockHandler_SaldoTrasRecepcion(t *testing.T) {
	app, _ := buildTestApp()

	resp := postJSON(t, app, "/api/receiving", receivingBody())
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = getPath(t, app, "/api/stock/?product_id="+testProduct+"&warehouse_id="+testWarehouse)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "success", env.Status)

	var data struct {
		Quantity decimal.Decimal `json:"quantity"`
		UnitCost decimal.Decimal `json:"unit_cost"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Quantity.Equal(decimal.RequireFromString("5")))
	assert.True(t, data.UnitCost.Equal(decimal.RequireFromString("1200.50")))
}

func TestStockHandler_SaldoSinRecepciones_CantidadCero(t *testing.T) {
	app, _ := buildTestApp()

	resp := getPath(t, app, "/api/stock/?product_id="+testProduct+"&warehouse_id="+testWarehouse)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "saldo inexistente es cantidad cero, no 404")

	env := decodeEnvelope(t, resp)
	var data struct {
		Quantity decimal.Decimal `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Quantity.IsZero())
}

func TestStockHandler_SaldoSinParametros400(t *testing.T) {
	app, _ := buildTestApp()

	resp := getPath(t, app, "/api/stock/")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStockHandler_MovimientosPorProducto(t *testing.T) {
	app, _ := buildTestApp()

	resp := postJSON(t, app, "/api/receiving", receivingBody())
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = getPath(t, app, "/api/stock/movements?product_id="+testProduct)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var data struct {
		Total     int `json:"total"`
		Movements []struct {
			Type          string          `json:"type"`
			Quantity      decimal.Decimal `json:"quantity"`
			ReferenceType string          `json:"reference_type"`
		} `json:"movements"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, 1, data.Total)
	assert.Equal(t, entity.MovementTypeIN, data.Movements[0].Type)
	assert.True(t, data.Movements[0].Quantity.GreaterThan(decimal.Zero))
	assert.Equal(t, entity.ReferenceGoodsReceipts, data.Movements[0].ReferenceType)
}

func TestStockHandler_MovimientosAmbosFiltros400(t *testing.T) {
	app, _ := buildTestApp()

	resp := getPath(t, app, "/api/stock/movements?product_id=p&warehouse_id=w")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"product_id y warehouse_id son excluyentes")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/receipts/:id y /api/receipts/:id/pdf
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiptHandler_ConsultaYPDF(t *testing.T) {
	app, _ := buildTestApp()

	resp := postJSON(t, app, "/api/receiving", receivingBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	resp.Body.Close()

	var created struct {
		ReceiveID string `json:"receive_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp = getPath(t, app, "/api/receipts/"+created.ReceiveID)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env = decodeEnvelope(t, resp)
	var receipt struct {
		ID    string `json:"id"`
		Items []struct {
			ProductID string `json:"product_id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	assert.Equal(t, created.ReceiveID, receipt.ID)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, testProduct, receipt.Items[0].ProductID)

	pdfResp := getPath(t, app, "/api/receipts/"+created.ReceiveID+"/pdf")
	defer pdfResp.Body.Close()
	assert.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
}

func TestReceiptHandler_NoExiste404(t *testing.T) {
	app, _ := buildTestApp()

	resp := getPath(t, app, "/api/receipts/no-existe")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "error", env.Status)
}
