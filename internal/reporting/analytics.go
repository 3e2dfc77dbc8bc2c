package reporting

import (
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/shopspring/decimal"
)

type StockValuation struct {
	TotalStockValue  decimal.Decimal `json:"total_stock_value"`
	PotentialRevenue decimal.Decimal `json:"potential_revenue"`
}

// Valuation prices the current stock at cost and at selling price.
func Valuation(stock []models.StockItem) StockValuation {
	var v StockValuation
	for _, item := range stock {
		qty := decimal.NewFromInt(int64(item.Quantity))
		v.TotalStockValue = v.TotalStockValue.Add(item.CostPrice.Mul(qty))
		v.PotentialRevenue = v.PotentialRevenue.Add(item.SellingPrice.Mul(qty))
	}
	return v
}

type ProductSales struct {
	ProductName string          `json:"product_name"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// RevenueByProduct groups sales by product, in order of first sale.
func RevenueByProduct(sales []models.SaleRecord) []ProductSales {
	out := []ProductSales{}
	index := map[string]int{}
	for _, sale := range sales {
		i, ok := index[sale.ProductName]
		if !ok {
			i = len(out)
			index[sale.ProductName] = i
			out = append(out, ProductSales{ProductName: sale.ProductName})
		}
		out[i].UnitsSold += sale.QuantitySold
		out[i].Revenue = out[i].Revenue.Add(sale.Revenue())
	}
	return out
}

type DailyDemand struct {
	Date        models.Date `json:"date"`
	ProductName string      `json:"product_name"`
	Quantity    int         `json:"quantity"`
}

// DemandByDate sums quantities per (date, product), in order of first occurrence.
func DemandByDate(sales []models.SaleRecord) []DailyDemand {
	type key struct {
		date models.Date
		name string
	}
	out := []DailyDemand{}
	index := map[key]int{}
	for _, sale := range sales {
		k := key{sale.Date, sale.ProductName}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, DailyDemand{Date: sale.Date, ProductName: sale.ProductName})
		}
		out[i].Quantity += sale.QuantitySold
	}
	return out
}

type ExpenseTotal struct {
	ExpenseName string          `json:"expense_name"`
	Amount      decimal.Decimal `json:"amount"`
}

func ExpensesByName(expenses []models.ExpenseRecord) []ExpenseTotal {
	out := []ExpenseTotal{}
	index := map[string]int{}
	for _, e := range expenses {
		i, ok := index[e.ExpenseName]
		if !ok {
			i = len(out)
			index[e.ExpenseName] = i
			out = append(out, ExpenseTotal{ExpenseName: e.ExpenseName})
		}
		out[i].Amount = out[i].Amount.Add(e.Amount)
	}
	return out
}
