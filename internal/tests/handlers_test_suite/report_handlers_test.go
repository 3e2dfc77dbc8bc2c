package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/retail-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/rogerio-castellano/retail-tracker/internal/reporting"
)

func TestHealthHandler(t *testing.T) {
	w := get(newRouter(), "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.HealthResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Status != "ok" {
		t.Errorf("unexpected status %q", resp.Status)
	}
}

func TestRestockAndBreakevenHandlers(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	addStock(r, widget(20))
	sell(r, saleOf("Widget", 12, "5.00", "2024-01-10"))

	var restock []reporting.RestockSuggestion
	if err := json.NewDecoder(get(r, "/reports/restock").Body).Decode(&restock); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(restock) != 1 || restock[0].Quantity != 8 || restock[0].Status != reporting.LabelRestockNeeded {
		t.Errorf("unexpected restock suggestions %+v", restock)
	}

	var breakeven []reporting.BreakevenPrice
	if err := json.NewDecoder(get(r, "/reports/breakeven").Body).Decode(&breakeven); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(breakeven) != 1 || !breakeven[0].BreakevenPrice.Equal(dec("2.50")) {
		t.Errorf("unexpected breakeven prices %+v", breakeven)
	}
}

func TestSummaryHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	addStock(r, widget(20))
	sell(r, saleOf("Widget", 5, "5.00", "2024-01-10"))
	addExpense(r, handler.ExpenseRequest{ExpenseName: "Rent", Amount: dec("30")})

	var resp handler.SummaryResponse
	if err := json.NewDecoder(get(r, "/reports/summary").Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !resp.Sales.TotalRevenue.Equal(dec("25")) || resp.Sales.TotalItemsSold != 5 {
		t.Errorf("unexpected sales summary %+v", resp.Sales)
	}
	if !resp.NetProfit.Equal(dec("-5")) {
		t.Errorf("expected net profit -5, got %v", resp.NetProfit)
	}
	if resp.Formatted.TotalRevenue != "$25.00" {
		t.Errorf("unexpected formatted revenue %q", resp.Formatted.TotalRevenue)
	}
}

func TestAlertsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	soon := widget(20)
	soon.ProductName, soon.ExpiryDate = "Milk", models.NewDate(2024, 1, 10)
	addStock(r, soon)
	addStock(r, widget(4))

	var resp handler.AlertsResponse
	if err := json.NewDecoder(get(r, "/reports/alerts?as_of=2024-01-10").Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.LowStock) != 1 || resp.LowStock[0].ProductName != "Widget" {
		t.Errorf("expected Widget to be low on stock, got %v", resp.LowStock)
	}
	if len(resp.Expiring) != 1 || resp.Expiring[0].ProductName != "Milk" {
		t.Errorf("expected Milk to be expiring, got %v", resp.Expiring)
	}

	if w := get(r, "/reports/alerts?as_of=tomorrow"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a bad date, got %d", w.Code)
	}
}

func TestDashboardHandler_RefreshesAfterWrites(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	addStock(r, widget(20))

	var first reporting.Report
	if err := json.NewDecoder(get(r, "/reports/dashboard").Body).Decode(&first); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if first.Metrics.TotalProducts != 1 || first.Metrics.TotalSales != 0 {
		t.Errorf("unexpected metrics %+v", first.Metrics)
	}

	sell(r, saleOf("Widget", 3, "5.00", "2024-01-10"))

	var second reporting.Report
	json.NewDecoder(get(r, "/reports/dashboard").Body).Decode(&second)
	if second.Metrics.TotalSales != 1 || second.Metrics.TopSeller.Name != "Widget" {
		t.Errorf("expected the sale in the dashboard, got %+v", second.Metrics)
	}
	if !second.Sales.TotalRevenue.Equal(dec("15")) {
		t.Errorf("expected revenue 15, got %v", second.Sales.TotalRevenue)
	}
}
