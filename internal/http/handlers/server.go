package handlers

import (
	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"go.uber.org/zap"
)

var (
	engine   *ledger.Engine
	logger   = zap.NewNop()
	currency = "USD"
)

func SetEngine(e *ledger.Engine) {
	engine = e
}

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// SetCurrency sets the ISO 4217 code used for formatted amounts.
func SetCurrency(code string) {
	currency = code
}
