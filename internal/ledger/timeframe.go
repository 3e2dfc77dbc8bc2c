package ledger

import (
	"fmt"
	"strings"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

type Timeframe string

const (
	Daily   Timeframe = "Daily"
	Weekly  Timeframe = "Weekly"
	Monthly Timeframe = "Monthly"
	All     Timeframe = "All"
)

var Timeframes = []Timeframe{Daily, Weekly, Monthly, All}

// ParseTimeframe accepts any casing of Daily, Weekly, Monthly or All.
func ParseTimeframe(s string) (Timeframe, error) {
	for _, tf := range Timeframes {
		if strings.EqualFold(strings.TrimSpace(s), string(tf)) {
			return tf, nil
		}
	}
	return "", ValidationErrors{{
		Field:       "timeframe",
		Description: fmt.Sprintf("unknown timeframe %q, expected one of Daily, Weekly, Monthly, All", s),
	}}
}

// Bounds returns the inclusive date range of the window ending on asOf.
// ok is false for All, which is unbounded.
func (tf Timeframe) Bounds(asOf models.Date) (since, until models.Date, ok bool) {
	switch tf {
	case Daily:
		return asOf, asOf, true
	case Weekly:
		return asOf.AddDays(-7), asOf, true
	case Monthly:
		return asOf.AddMonths(-1), asOf, true
	default:
		return models.Date{}, models.Date{}, false
	}
}
