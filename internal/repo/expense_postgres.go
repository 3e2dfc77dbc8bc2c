package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

type PostgresExpenseRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresExpenseRepository(db *sql.DB, timeout time.Duration) *PostgresExpenseRepository {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &PostgresExpenseRepository{db: db, timeout: timeout}
}

func (r *PostgresExpenseRepository) Create(ctx context.Context, e models.ExpenseRecord) (models.ExpenseRecord, error) {
	query := `INSERT INTO expenses (expense_name, amount) VALUES ($1, $2) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, e.ExpenseName, e.Amount).Scan(&e.ID)
	return e, err
}

func (r *PostgresExpenseRepository) GetAll(ctx context.Context) ([]models.ExpenseRecord, error) {
	query := `SELECT id, expense_name, amount FROM expenses ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.ExpenseRecord{}
	for rows.Next() {
		var e models.ExpenseRecord
		if err := rows.Scan(&e.ID, &e.ExpenseName, &e.Amount); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
