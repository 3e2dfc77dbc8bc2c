// Package reporting derives business reports from ledger snapshots.
// Every function is pure: inputs are read, never modified.
package reporting

import (
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// RestockThreshold is the quantity below which an item needs restocking.
	RestockThreshold = 10

	LabelRestockNeeded = "Low Stock - Restock Needed"
	LabelSufficient    = "Sufficient Stock"
)

// BreakevenMarkup is applied to the cost price to suggest a selling price.
var BreakevenMarkup = decimal.RequireFromString("1.25")

type RestockSuggestion struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
}

func RestockSuggestions(stock []models.StockItem) []RestockSuggestion {
	out := make([]RestockSuggestion, 0, len(stock))
	for _, item := range stock {
		status := LabelSufficient
		if item.Quantity < RestockThreshold {
			status = LabelRestockNeeded
		}
		out = append(out, RestockSuggestion{ProductName: item.ProductName, Quantity: item.Quantity, Status: status})
	}
	return out
}

type BreakevenPrice struct {
	ProductName    string          `json:"product_name"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	BreakevenPrice decimal.Decimal `json:"breakeven_price"`
}

func BreakevenPrices(stock []models.StockItem) []BreakevenPrice {
	out := make([]BreakevenPrice, 0, len(stock))
	for _, item := range stock {
		out = append(out, BreakevenPrice{
			ProductName:    item.ProductName,
			CostPrice:      item.CostPrice,
			BreakevenPrice: item.CostPrice.Mul(BreakevenMarkup),
		})
	}
	return out
}

type SalesSummary struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalItemsSold int             `json:"total_items_sold"`
}

func SalesReport(sales []models.SaleRecord) SalesSummary {
	var s SalesSummary
	for _, sale := range sales {
		s.TotalRevenue = s.TotalRevenue.Add(sale.Revenue())
		s.TotalItemsSold += sale.QuantitySold
	}
	return s
}

type ExpenseSummary struct {
	TotalExpenses decimal.Decimal `json:"total_expenses"`
}

func ExpenseReport(expenses []models.ExpenseRecord) ExpenseSummary {
	var s ExpenseSummary
	for _, e := range expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}
	return s
}

// NetProfit is revenue minus expenses. It may be negative.
func NetProfit(sales SalesSummary, expenses ExpenseSummary) decimal.Decimal {
	return sales.TotalRevenue.Sub(expenses.TotalExpenses)
}

func LowStockAlerts(stock []models.StockItem) []models.StockItem {
	out := []models.StockItem{}
	for _, item := range stock {
		if item.Quantity < RestockThreshold {
			out = append(out, item)
		}
	}
	return out
}

// ExpiringAlerts returns items whose expiry date is set and not after asOf.
func ExpiringAlerts(stock []models.StockItem, asOf models.Date) []models.StockItem {
	out := []models.StockItem{}
	for _, item := range stock {
		if !item.ExpiryDate.IsZero() && !item.ExpiryDate.After(asOf) {
			out = append(out, item)
		}
	}
	return out
}
