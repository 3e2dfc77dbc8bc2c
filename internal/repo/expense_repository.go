package repo

import (
	"context"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

// ExpenseRepository is an append-only expense ledger. Duplicate names are allowed.
type ExpenseRepository interface {
	Create(ctx context.Context, e models.ExpenseRecord) (models.ExpenseRecord, error)
	GetAll(ctx context.Context) ([]models.ExpenseRecord, error)
}
