package models

import "github.com/shopspring/decimal"

// SaleRecord is an immutable entry of the sales ledger.
type SaleRecord struct {
	ID           int64           `json:"id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	Date         Date            `json:"date"`
}

// Revenue is QuantitySold × SalePrice.
func (s SaleRecord) Revenue() decimal.Decimal {
	return s.SalePrice.Mul(decimal.NewFromInt(int64(s.QuantitySold)))
}
