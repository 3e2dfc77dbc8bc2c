package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

func TestAddStockHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := addStock(r, widget(20))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var item models.StockItem
	if err := json.NewDecoder(w.Body).Decode(&item); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if item.ProductName != "Widget" || item.Quantity != 20 {
		t.Errorf("unexpected item %+v", item)
	}
	if !item.SellingPrice.Equal(dec("5")) {
		t.Errorf("expected selling price 5, got %v", item.SellingPrice)
	}
}

func TestAddStockHandler_RestockKeepsFirstValues(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	addStock(r, widget(20))
	again := widget(5)
	again.CostPrice, again.SellingPrice, again.Supplier = dec("3.00"), dec("9.00"), "Other"
	w := addStock(r, again)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var items []models.StockItem
	if err := json.NewDecoder(get(r, "/stock").Body).Decode(&items); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one product, got %d", len(items))
	}
	got := items[0]
	if got.Quantity != 25 {
		t.Errorf("expected quantity 25, got %d", got.Quantity)
	}
	if !got.CostPrice.Equal(dec("2")) || !got.SellingPrice.Equal(dec("5")) || got.Supplier != "Acme" {
		t.Errorf("expected original prices and supplier to be kept, got %+v", got)
	}
}

func TestAddStockHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	tests := []struct {
		name           string
		payload        any
		expectedErrors []string
	}{
		{
			name:           "Empty name",
			payload:        map[string]any{"product_name": "", "quantity": 1, "cost_price": "1", "selling_price": "2"},
			expectedErrors: []string{"product_name"},
		},
		{
			name:           "Zero quantity and prices",
			payload:        map[string]any{"product_name": "Gadget", "quantity": 0, "cost_price": "0", "selling_price": "0"},
			expectedErrors: []string{"quantity", "cost_price", "selling_price"},
		},
		{
			name:           "Negative quantity",
			payload:        map[string]any{"product_name": "Gadget", "quantity": -3, "cost_price": "1", "selling_price": "2"},
			expectedErrors: []string{"quantity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/stock", tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}

			var resp []ledger.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			for _, field := range tt.expectedErrors {
				found := false
				for _, e := range resp {
					if e.Field == field {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, got %v", field, resp)
				}
			}
		})
	}

	var items []models.StockItem
	json.NewDecoder(get(r, "/stock").Body).Decode(&items)
	if len(items) != 0 {
		t.Errorf("expected no stock after rejected requests, got %v", items)
	}
}

func TestAddStockHandler_MalformedJSON(t *testing.T) {
	r := newRouter()

	badJSON := `{"product_name": "Widget" "quantity": 1}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/stock", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestDeleteStockHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	addStock(r, widget(20))
	sell(r, saleOf("Widget", 2, "5.00", "2024-01-10"))

	req := httptest.NewRequest(http.MethodDelete, "/stock/Widget", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	var items []models.StockItem
	json.NewDecoder(get(r, "/stock").Body).Decode(&items)
	if len(items) != 0 {
		t.Errorf("expected empty inventory, got %v", items)
	}

	var sales struct {
		Data []models.SaleRecord `json:"data"`
	}
	json.NewDecoder(get(r, "/sales").Body).Decode(&sales)
	if len(sales.Data) != 1 {
		t.Errorf("expected the sale to survive deletion, got %v", sales.Data)
	}

	req = httptest.NewRequest(http.MethodDelete, "/stock/Widget", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a second delete, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "product not found") {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestGetProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	addStock(r, widget(20))

	w := get(r, "/stock/Widget")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var item models.StockItem
	if err := json.NewDecoder(w.Body).Decode(&item); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if item.ProductName != "Widget" || item.Quantity != 20 || item.Supplier != "Acme" {
		t.Errorf("unexpected item %+v", item)
	}

	w = get(r, "/stock/Gadget")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "product not found") {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}
