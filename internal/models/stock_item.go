package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem is one inventory record. ProductName is its unique key.
type StockItem struct {
	ID           int64           `json:"id"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Supplier     string          `json:"supplier"`
	ExpiryDate   Date            `json:"expiry_date"`
	CreatedAt    time.Time       `json:"created_at,omitzero"`
	UpdatedAt    time.Time       `json:"updated_at,omitzero"`
}
