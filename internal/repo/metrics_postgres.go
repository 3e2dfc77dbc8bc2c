package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type PostgresMetricsRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresMetricsRepository(db *sql.DB, timeout time.Duration) *PostgresMetricsRepository {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &PostgresMetricsRepository{db: db, timeout: timeout}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(ctx context.Context, lowStockThreshold int) (Metrics, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var m Metrics

	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM inventory),
			(SELECT COUNT(*) FROM sales),
			(SELECT COUNT(*) FROM inventory WHERE quantity < $1)
	`, lowStockThreshold).Scan(&m.TotalProducts, &m.TotalSales, &m.LowStockCount)
	if err != nil {
		return Metrics{}, fmt.Errorf("count metrics: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT product_name, SUM(quantity_sold) AS units
		FROM sales
		GROUP BY product_name
		ORDER BY units DESC, MIN(id)
		LIMIT 1
	`).Scan(&m.TopSeller.Name, &m.TopSeller.UnitsSold)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Metrics{}, fmt.Errorf("top seller: %w", err)
	}

	return m, nil
}
