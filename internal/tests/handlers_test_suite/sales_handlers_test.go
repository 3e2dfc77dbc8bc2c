package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	handler "github.com/rogerio-castellano/retail-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

func saleOf(name string, qty int, price, date string) handler.SaleRequest {
	d, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return handler.SaleRequest{ProductName: name, QuantitySold: qty, SalePrice: dec(price), Date: d}
}

func TestSellProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	addStock(r, widget(20))

	w := sell(r, saleOf("Widget", 5, "5.00", "2024-01-10"))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var conf ledger.SaleConfirmation
	if err := json.NewDecoder(w.Body).Decode(&conf); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if conf.Message != "5 units of Widget sold successfully!" {
		t.Errorf("unexpected message %q", conf.Message)
	}
	if conf.RemainingQuantity != 15 {
		t.Errorf("expected 15 remaining, got %d", conf.RemainingQuantity)
	}
	if conf.Sale.Date != models.NewDate(2024, 1, 10) {
		t.Errorf("unexpected sale date %v", conf.Sale.Date)
	}
}

func TestSellProductHandler_DefaultsDateToToday(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	addStock(r, widget(20))

	w := postJSON(r, "/sales", map[string]any{"product_name": "Widget", "quantity_sold": 1, "sale_price": "5"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var conf ledger.SaleConfirmation
	json.NewDecoder(w.Body).Decode(&conf)
	if conf.Sale.Date != models.DateOf(today) {
		t.Errorf("expected sale dated %v, got %v", models.DateOf(today), conf.Sale.Date)
	}
}

func TestSellProductHandler_NotEnoughStock(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	addStock(r, widget(3))

	tests := []struct {
		name string
		sale handler.SaleRequest
	}{
		{"Oversell", saleOf("Widget", 4, "5.00", "2024-01-10")},
		{"Unknown product", saleOf("Gizmo", 1, "5.00", "2024-01-10")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := sell(r, tt.sale)
			if w.Code != http.StatusConflict {
				t.Fatalf("expected 409 Conflict, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Not enough stock") {
				t.Errorf("unexpected body %q", w.Body.String())
			}
		})
	}

	var items []models.StockItem
	json.NewDecoder(get(r, "/stock").Body).Decode(&items)
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Errorf("expected stock to stay at 3, got %v", items)
	}

	var page handler.SalesSearchResult
	json.NewDecoder(get(r, "/sales").Body).Decode(&page)
	if page.Meta.TotalCount != 0 {
		t.Errorf("expected no sales recorded, got %d", page.Meta.TotalCount)
	}
}

func TestSellProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	addStock(r, widget(3))

	w := postJSON(r, "/sales", map[string]any{"product_name": "Widget", "quantity_sold": 0, "sale_price": "-1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []ledger.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("expected errors for quantity_sold and sale_price, got %v", resp)
	}
}

func TestSellProductHandler_Concurrent(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	addStock(r, widget(50))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range 80 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if w := sell(r, saleOf("Widget", 1, "5.00", "2024-01-10")); w.Code == http.StatusCreated {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 50 {
		t.Errorf("expected exactly 50 successful sales, got %d", succeeded)
	}

	var items []models.StockItem
	json.NewDecoder(get(r, "/stock").Body).Decode(&items)
	if items[0].Quantity != 0 {
		t.Errorf("expected stock 0, got %d", items[0].Quantity)
	}
}

func TestGetSalesHandler_Pagination(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	addStock(r, widget(20))
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		sell(r, saleOf("Widget", 1, "5.00", d))
	}

	var page handler.SalesSearchResult
	if err := json.NewDecoder(get(r, "/sales?offset=1&limit=1").Body).Decode(&page); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if page.Meta.TotalCount != 3 {
		t.Errorf("expected total 3, got %d", page.Meta.TotalCount)
	}
	if len(page.Data) != 1 || page.Data[0].Date != models.NewDate(2024, 1, 2) {
		t.Errorf("expected the second sale only, got %v", page.Data)
	}

	if w := get(r, "/sales?limit=-1"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a negative limit, got %d", w.Code)
	}
}
