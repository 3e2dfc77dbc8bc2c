package repo

import "context"

type InMemoryMetricsRepository struct {
	store *MemoryStore
}

func NewInMemoryMetricsRepository(store *MemoryStore) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{store: store}
}

// GetDashboardMetrics implements MetricsRepository.
func (r *InMemoryMetricsRepository) GetDashboardMetrics(_ context.Context, lowStockThreshold int) (Metrics, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := Metrics{
		TotalProducts: len(s.items),
		TotalSales:    len(s.sales),
	}

	for _, item := range s.items {
		if item.Quantity < lowStockThreshold {
			m.LowStockCount++
		}
	}

	// Ties go to the product sold first.
	units := map[string]int{}
	for _, sale := range s.sales {
		units[sale.ProductName] += sale.QuantitySold
	}
	for _, sale := range s.sales {
		if n := units[sale.ProductName]; n > m.TopSeller.UnitsSold {
			m.TopSeller = TopSeller{Name: sale.ProductName, UnitsSold: n}
		}
	}

	return m, nil
}
