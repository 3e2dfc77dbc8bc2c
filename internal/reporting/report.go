package reporting

import (
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/rogerio-castellano/retail-tracker/internal/repo"
	"github.com/shopspring/decimal"
)

// Report is the full dashboard snapshot for one day.
type Report struct {
	AsOf      models.Date    `json:"as_of"`
	Metrics   repo.Metrics   `json:"metrics"`
	Valuation StockValuation `json:"valuation"`

	Sales     SalesSummary    `json:"sales"`
	Expenses  ExpenseSummary  `json:"expenses"`
	NetProfit decimal.Decimal `json:"net_profit"`

	Restock          []RestockSuggestion `json:"restock"`
	Breakeven        []BreakevenPrice    `json:"breakeven"`
	LowStock         []models.StockItem  `json:"low_stock"`
	Expiring         []models.StockItem  `json:"expiring"`
	RevenueByProduct []ProductSales      `json:"revenue_by_product"`
	DemandByDate     []DailyDemand       `json:"demand_by_date"`
	ExpensesByName   []ExpenseTotal      `json:"expenses_by_name"`
}

func Build(asOf models.Date, metrics repo.Metrics, stock []models.StockItem, sales []models.SaleRecord, expenses []models.ExpenseRecord) Report {
	salesSummary := SalesReport(sales)
	expenseSummary := ExpenseReport(expenses)

	return Report{
		AsOf:             asOf,
		Metrics:          metrics,
		Valuation:        Valuation(stock),
		Sales:            salesSummary,
		Expenses:         expenseSummary,
		NetProfit:        NetProfit(salesSummary, expenseSummary),
		Restock:          RestockSuggestions(stock),
		Breakeven:        BreakevenPrices(stock),
		LowStock:         LowStockAlerts(stock),
		Expiring:         ExpiringAlerts(stock, asOf),
		RevenueByProduct: RevenueByProduct(sales),
		DemandByDate:     DemandByDate(sales),
		ExpensesByName:   ExpensesByName(expenses),
	}
}
