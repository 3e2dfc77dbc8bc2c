package ledger

import (
	"fmt"
	"strings"

	"github.com/rogerio-castellano/retail-tracker/internal/repo"
	"github.com/shopspring/decimal"
)

// MaxQuantity bounds stock and sale quantities.
const MaxQuantity = repo.MaxQuantity

// Money columns are NUMERIC(12,2).
var maxAmount = decimal.New(1, 10)

var (
	ErrNotFound          = repo.ErrProductNotFound
	ErrInsufficientStock = repo.ErrInsufficientStock
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationErrors lists every rejected input field of one call.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Field + ": " + e.Description
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func quantityTooLarge(field string) ValidationError {
	return ValidationError{Field: field, Description: fmt.Sprintf("Quantity cannot exceed %d", MaxQuantity)}
}

// amountError reports a value that does not fit a money column: at most two
// decimal places and ten integer digits.
func amountError(field, label string, d decimal.Decimal) (ValidationError, bool) {
	if !d.Equal(d.Round(2)) {
		return ValidationError{Field: field, Description: label + " cannot have more than 2 decimal places"}, true
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return ValidationError{Field: field, Description: label + " cannot have more than 10 integer digits"}, true
	}
	return ValidationError{}, false
}
