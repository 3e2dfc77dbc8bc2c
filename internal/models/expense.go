package models

import "github.com/shopspring/decimal"

type ExpenseRecord struct {
	ID          int64           `json:"id"`
	ExpenseName string          `json:"expense_name"`
	Amount      decimal.Decimal `json:"amount"`
}
