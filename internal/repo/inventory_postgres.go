package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

const DefaultQueryTimeout = 3 * time.Second

const stockColumns = `id, product_name, quantity, cost_price, selling_price, supplier, expiry_date, created_at, updated_at`

type PostgresInventoryRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresInventoryRepository(db *sql.DB, timeout time.Duration) *PostgresInventoryRepository {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &PostgresInventoryRepository{db: db, timeout: timeout}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStockItem(row rowScanner) (models.StockItem, error) {
	var item models.StockItem
	err := row.Scan(&item.ID, &item.ProductName, &item.Quantity, &item.CostPrice, &item.SellingPrice,
		&item.Supplier, &item.ExpiryDate, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

// Upsert relies on the unique product_name index. Only quantity is merged on conflict.
func (r *PostgresInventoryRepository) Upsert(ctx context.Context, item models.StockItem) (models.StockItem, error) {
	query := `
		INSERT INTO inventory (product_name, quantity, cost_price, selling_price, supplier, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_name) DO UPDATE
		SET quantity = inventory.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING ` + stockColumns
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	stored, err := scanStockItem(r.db.QueryRowContext(ctx, query,
		item.ProductName, item.Quantity, item.CostPrice, item.SellingPrice, item.Supplier, item.ExpiryDate))
	if isNumericOutOfRange(err) {
		return models.StockItem{}, ErrQuantityOverflow
	}
	return stored, err
}

func (r *PostgresInventoryRepository) GetAll(ctx context.Context) ([]models.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM inventory ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.StockItem{}
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresInventoryRepository) GetByName(ctx context.Context, name string) (models.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM inventory WHERE product_name = $1`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	item, err := scanStockItem(r.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StockItem{}, ErrProductNotFound
	}
	return item, err
}

func (r *PostgresInventoryRepository) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM inventory WHERE product_name = $1`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
