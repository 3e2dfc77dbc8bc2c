package repo

import "context"

type TopSeller struct {
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
}

type Metrics struct {
	TotalProducts int       `json:"total_products"`
	TotalSales    int       `json:"total_sales"`
	LowStockCount int       `json:"low_stock_count"`
	TopSeller     TopSeller `json:"top_seller"`
}

// MetricsRepository computes dashboard counters. Items with quantity below
// lowStockThreshold count as low stock.
type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context, lowStockThreshold int) (Metrics, error)
}
