package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	handler "github.com/rogerio-castellano/retail-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/retail-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/retail-tracker/internal/http/router"
	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/repo"
	"github.com/shopspring/decimal"
)

// today is the engine clock for every test: 2024-01-10.
var today = time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)

var (
	engine *ledger.Engine
	store  *repo.MemoryStore
)

func init() {
	engine, store = ledger.NewMemoryEngine(ledger.WithClock(func() time.Time { return today }))
	handler.SetEngine(engine)
}

func newRouter() http.Handler {
	return router.NewRouter(rl.New(1000, 1000))
}

func clearAll() {
	store.Reset()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func postJSON(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addStock(r http.Handler, s handler.StockRequest) *httptest.ResponseRecorder {
	return postJSON(r, "/stock", s)
}

func sell(r http.Handler, s handler.SaleRequest) *httptest.ResponseRecorder {
	return postJSON(r, "/sales", s)
}

func addExpense(r http.Handler, e handler.ExpenseRequest) *httptest.ResponseRecorder {
	return postJSON(r, "/expenses", e)
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func widget(qty int) handler.StockRequest {
	return handler.StockRequest{ProductName: "Widget", Quantity: qty, CostPrice: dec("2.00"), SellingPrice: dec("5.00"), Supplier: "Acme"}
}
