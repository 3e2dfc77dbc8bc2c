package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema only uses IF NOT EXISTS statements so it can run on every start.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS inventory (
		id            BIGSERIAL PRIMARY KEY,
		product_name  TEXT NOT NULL UNIQUE,
		quantity      INTEGER NOT NULL CHECK (quantity >= 0),
		cost_price    NUMERIC(12, 2) NOT NULL,
		selling_price NUMERIC(12, 2) NOT NULL,
		supplier      TEXT NOT NULL DEFAULT '',
		expiry_date   DATE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id            BIGSERIAL PRIMARY KEY,
		product_name  TEXT NOT NULL,
		quantity_sold INTEGER NOT NULL CHECK (quantity_sold > 0),
		sale_price    NUMERIC(12, 2) NOT NULL CHECK (sale_price >= 0),
		date          DATE NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS sales_date_idx ON sales (date)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id           BIGSERIAL PRIMARY KEY,
		expense_name TEXT NOT NULL,
		amount       NUMERIC(12, 2) NOT NULL CHECK (amount >= 0)
	)`,
}

// EnsureSchema creates the inventory, sales and expenses tables when missing.
// Existing data is never touched.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return tx.Commit()
}
