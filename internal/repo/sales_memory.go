package repo

import (
	"context"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

type InMemorySalesRepository struct {
	store *MemoryStore
}

func NewInMemorySalesRepository(store *MemoryStore) *InMemorySalesRepository {
	return &InMemorySalesRepository{store: store}
}

// RecordSale holds the store's write lock across the decrement and the append.
func (r *InMemorySalesRepository) RecordSale(_ context.Context, sale models.SaleRecord) (models.SaleRecord, int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(sale.ProductName)
	if i < 0 || s.items[i].Quantity < sale.QuantitySold {
		return models.SaleRecord{}, 0, ErrInsufficientStock
	}

	s.items[i].Quantity -= sale.QuantitySold
	sale.ID = s.nextSaleID
	s.nextSaleID++
	s.sales = append(s.sales, sale)
	return sale, s.items[i].Quantity, nil
}

// List returns matching sales, optionally paginated.
func (r *InMemorySalesRepository) List(_ context.Context, f SalesFilter) ([]models.SaleRecord, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	filtered := []models.SaleRecord{}
	for _, sale := range r.store.sales {
		if f.Matches(sale) {
			filtered = append(filtered, sale)
		}
	}

	// If offset is past the end, return an empty page
	if f.Offset != nil && *f.Offset > len(filtered) {
		return []models.SaleRecord{}, len(filtered), nil
	}

	start := 0
	if f.Offset != nil {
		start = clamp(*f.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if f.Limit != nil && *f.Limit > 0 {
		end = clamp(start+*f.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}
