package archive

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/rogerio-castellano/retail-tracker/internal/reporting"
	"github.com/rogerio-castellano/retail-tracker/internal/repo"
	"github.com/shopspring/decimal"
)

func TestNewDailyReport(t *testing.T) {
	asOf := models.NewDate(2024, time.January, 10)
	stock := []models.StockItem{{ProductName: "Widget", Quantity: 15, CostPrice: decimal.RequireFromString("2.00"), SellingPrice: decimal.RequireFromString("5.00")}}
	sales := []models.SaleRecord{{ProductName: "Widget", QuantitySold: 5, SalePrice: decimal.RequireFromString("5.00"), Date: asOf}}
	expenses := []models.ExpenseRecord{{ExpenseName: "Rent", Amount: decimal.RequireFromString("30.50")}}
	metrics := repo.Metrics{TotalProducts: 1, TotalSales: 1, TopSeller: repo.TopSeller{Name: "Widget", UnitsSold: 5}}

	generated := time.Date(2024, time.January, 10, 23, 55, 0, 0, time.UTC)
	doc, err := NewDailyReport(reporting.Build(asOf, metrics, stock, sales, expenses), generated)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if doc.Date != "2024-01-10" || doc.TopSeller != "Widget" || doc.ItemsSold != 5 || !doc.GeneratedAt.Equal(generated) {
		t.Errorf("unexpected document %+v", doc)
	}
	if doc.TotalRevenue.String() != "25" {
		t.Errorf("expected revenue 25, got %s", doc.TotalRevenue)
	}
	if doc.NetProfit.String() != "-5.5" {
		t.Errorf("expected net profit -5.5, got %s", doc.NetProfit)
	}
	if len(doc.RevenueByProduct) != 1 || doc.RevenueByProduct[0].UnitsSold != 5 {
		t.Errorf("unexpected revenue by product %+v", doc.RevenueByProduct)
	}
}
