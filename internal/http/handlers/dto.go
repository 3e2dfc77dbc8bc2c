package handlers

import (
	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/rogerio-castellano/retail-tracker/internal/reporting"
	"github.com/shopspring/decimal"
)

type StockRequest struct {
	ProductName  string          `json:"product_name" example:"Widget"`
	Quantity     int             `json:"quantity" example:"20"`
	CostPrice    decimal.Decimal `json:"cost_price" swaggertype:"string" example:"2.00"`
	SellingPrice decimal.Decimal `json:"selling_price" swaggertype:"string" example:"5.00"`
	Supplier     string          `json:"supplier,omitempty" example:"Acme"`
	ExpiryDate   models.Date     `json:"expiry_date" swaggertype:"string" example:"2025-12-31"`
}

func (s StockRequest) input() ledger.StockInput {
	return ledger.StockInput(s)
}

type SaleRequest struct {
	ProductName  string          `json:"product_name" example:"Widget"`
	QuantitySold int             `json:"quantity_sold" example:"5"`
	SalePrice    decimal.Decimal `json:"sale_price" swaggertype:"string" example:"5.00"`
	Date         models.Date     `json:"date" swaggertype:"string" example:"2024-01-10"`
}

func (s SaleRequest) input() ledger.SaleInput {
	return ledger.SaleInput(s)
}

type ExpenseRequest struct {
	ExpenseName string          `json:"expense_name" example:"Rent"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"500.00"`
}

func (e ExpenseRequest) input() ledger.ExpenseInput {
	return ledger.ExpenseInput(e)
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type SalesSearchResult struct {
	Data []models.SaleRecord `json:"data"`
	Meta Meta                `json:"meta"`
}

type SummaryResponse struct {
	Sales     reporting.SalesSummary   `json:"sales"`
	Expenses  reporting.ExpenseSummary `json:"expenses"`
	NetProfit decimal.Decimal          `json:"net_profit"`
	Formatted FormattedSummary         `json:"formatted"`
}

type FormattedSummary struct {
	TotalRevenue  string `json:"total_revenue"`
	TotalExpenses string `json:"total_expenses"`
	NetProfit     string `json:"net_profit"`
}

type AlertsResponse struct {
	AsOf     models.Date        `json:"as_of"`
	LowStock []models.StockItem `json:"low_stock"`
	Expiring []models.StockItem `json:"expiring"`
}

// ImportStockResult is also the body of a failed import. Rows counted in
// ImportedCount stay stored and Error names the row that stopped it.
type ImportStockResult struct {
	ImportedCount int                      `json:"imported"`
	Errors        []ledger.ValidationError `json:"errors"`
	Error         string                   `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
