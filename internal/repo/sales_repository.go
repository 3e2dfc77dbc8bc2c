package repo

import (
	"context"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

type SalesRepository interface {
	// RecordSale decrements the product's stock by sale.QuantitySold and appends the
	// sale in one atomic step. It returns the stored sale and the remaining quantity,
	// or ErrInsufficientStock leaving everything unchanged.
	RecordSale(ctx context.Context, sale models.SaleRecord) (models.SaleRecord, int, error)
	// List returns matching sales in insertion order along with the unpaginated match count.
	List(ctx context.Context, f SalesFilter) ([]models.SaleRecord, int, error)
}
