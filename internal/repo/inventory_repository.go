package repo

import (
	"context"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

// InventoryRepository stores one StockItem per product name.
type InventoryRepository interface {
	// Upsert creates the item, or when the name already exists adds item.Quantity
	// to the stored quantity and keeps every other stored field. A sum above
	// MaxQuantity fails with ErrQuantityOverflow and changes nothing.
	Upsert(ctx context.Context, item models.StockItem) (models.StockItem, error)
	GetAll(ctx context.Context) ([]models.StockItem, error)
	GetByName(ctx context.Context, name string) (models.StockItem, error)
	Delete(ctx context.Context, name string) error
}
