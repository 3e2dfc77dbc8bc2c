package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

type PostgresSalesRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresSalesRepository(db *sql.DB, timeout time.Duration) *PostgresSalesRepository {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &PostgresSalesRepository{db: db, timeout: timeout}
}

// RecordSale runs the guarded decrement and the insert in one transaction.
// The conditional UPDATE locks the inventory row, serializing sells of the same product.
func (r *PostgresSalesRepository) RecordSale(ctx context.Context, sale models.SaleRecord) (models.SaleRecord, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.SaleRecord{}, 0, fmt.Errorf("begin sale: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var remaining int
	err = tx.QueryRowContext(ctx, `
		UPDATE inventory
		SET quantity = quantity - $1, updated_at = now()
		WHERE product_name = $2 AND quantity >= $1
		RETURNING quantity
	`, sale.QuantitySold, sale.ProductName).Scan(&remaining)
	if errors.Is(err, sql.ErrNoRows) || isCheckViolation(err) {
		return models.SaleRecord{}, 0, ErrInsufficientStock
	}
	if err != nil {
		return models.SaleRecord{}, 0, fmt.Errorf("decrement stock: %w", err)
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO sales (product_name, quantity_sold, sale_price, date) VALUES ($1, $2, $3, $4) RETURNING id`,
		sale.ProductName, sale.QuantitySold, sale.SalePrice, sale.Date,
	).Scan(&sale.ID)
	if err != nil {
		return models.SaleRecord{}, 0, fmt.Errorf("insert sale: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.SaleRecord{}, 0, fmt.Errorf("commit sale: %w", err)
	}
	return sale, remaining, nil
}

func (r *PostgresSalesRepository) List(ctx context.Context, f SalesFilter) ([]models.SaleRecord, int, error) {
	if f.Offset != nil && *f.Offset < 0 {
		return nil, 0, fmt.Errorf("offset must be non-negative")
	}

	whereClause, args := buildSalesWhereClause(f)

	total, err := r.getTotal(ctx, whereClause, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	// Early return if offset is beyond total
	if f.Offset != nil && *f.Offset >= total {
		return []models.SaleRecord{}, total, nil
	}

	query, queryArgs := buildSalesQuery(whereClause, args, f)
	sales, err := r.executeQuery(ctx, query, queryArgs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return sales, total, nil
}

func buildSalesWhereClause(f SalesFilter) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}

	if f.Since != nil {
		args = append(args, *f.Since)
		whereClause += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if f.Until != nil {
		args = append(args, *f.Until)
		whereClause += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	return whereClause, args
}

func buildSalesQuery(whereClause string, baseArgs []any, f SalesFilter) (string, []any) {
	query := fmt.Sprintf("SELECT id, product_name, quantity_sold, sale_price, date FROM sales %s ORDER BY id", whereClause)
	args := append([]any{}, baseArgs...)

	if f.Limit != nil && *f.Limit > 0 {
		args = append(args, *f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset != nil && *f.Offset > 0 {
		args = append(args, *f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}

func (r *PostgresSalesRepository) getTotal(ctx context.Context, whereClause string, args []any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sales "+whereClause, args...).Scan(&total)
	return total, err
}

func (r *PostgresSalesRepository) executeQuery(ctx context.Context, query string, args []any) ([]models.SaleRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []models.SaleRecord{}
	for rows.Next() {
		var s models.SaleRecord
		if err := rows.Scan(&s.ID, &s.ProductName, &s.QuantitySold, &s.SalePrice, &s.Date); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
