// Package ledger is the inventory, sales and expense engine. It validates
// input, delegates storage to the repositories and keeps the report cache honest.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/retail-tracker/internal/cache"
	"github.com/rogerio-castellano/retail-tracker/internal/logger"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/rogerio-castellano/retail-tracker/internal/reporting"
	"github.com/rogerio-castellano/retail-tracker/internal/repo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repositories struct {
	Inventory repo.InventoryRepository
	Sales     repo.SalesRepository
	Expenses  repo.ExpenseRepository
	Metrics   repo.MetricsRepository
}

type Engine struct {
	inventory repo.InventoryRepository
	sales     repo.SalesRepository
	expenses  repo.ExpenseRepository
	metrics   repo.MetricsRepository

	cache  cache.ReportCache
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Engine)

func WithCache(c cache.ReportCache) Option {
	return func(e *Engine) { e.cache = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger.Named(l, "ledger") }
}

// WithClock sets the source of "today" for sales without a date.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(r Repositories, opts ...Option) *Engine {
	e := &Engine{
		inventory: r.Inventory,
		sales:     r.Sales,
		expenses:  r.Expenses,
		metrics:   r.Metrics,
		cache:     cache.NoopReportCache{},
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewMemoryEngine wires an engine over a fresh in-memory store.
func NewMemoryEngine(opts ...Option) (*Engine, *repo.MemoryStore) {
	store := repo.NewMemoryStore()
	return NewEngine(Repositories{
		Inventory: repo.NewInMemoryInventoryRepository(store),
		Sales:     repo.NewInMemorySalesRepository(store),
		Expenses:  repo.NewInMemoryExpenseRepository(store),
		Metrics:   repo.NewInMemoryMetricsRepository(store),
	}, opts...), store
}

// Today is the current date on the engine's clock.
func (e *Engine) Today() models.Date { return models.DateOf(e.now()) }

type StockInput struct {
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Supplier     string          `json:"supplier"`
	ExpiryDate   models.Date     `json:"expiry_date"`
}

func (in StockInput) validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(in.ProductName) == "" {
		errs = append(errs, ValidationError{Field: "product_name", Description: "Product name is required"})
	}
	if in.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "quantity", Description: "Quantity must be greater than zero"})
	} else if in.Quantity > MaxQuantity {
		errs = append(errs, quantityTooLarge("quantity"))
	}
	if !in.CostPrice.IsPositive() {
		errs = append(errs, ValidationError{Field: "cost_price", Description: "Cost price must be greater than zero"})
	} else if ve, bad := amountError("cost_price", "Cost price", in.CostPrice); bad {
		errs = append(errs, ve)
	}
	if !in.SellingPrice.IsPositive() {
		errs = append(errs, ValidationError{Field: "selling_price", Description: "Selling price must be greater than zero"})
	} else if ve, bad := amountError("selling_price", "Selling price", in.SellingPrice); bad {
		errs = append(errs, ve)
	}
	return errs.orNil()
}

// AddStock creates the product or, when it already exists, adds to its quantity.
// The stored prices, supplier and expiry of an existing product are kept.
func (e *Engine) AddStock(ctx context.Context, in StockInput) (models.StockItem, error) {
	if err := in.validate(); err != nil {
		return models.StockItem{}, err
	}

	item, err := e.inventory.Upsert(ctx, models.StockItem{
		ProductName:  strings.TrimSpace(in.ProductName),
		Quantity:     in.Quantity,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		Supplier:     strings.TrimSpace(in.Supplier),
		ExpiryDate:   in.ExpiryDate,
	})
	if errors.Is(err, repo.ErrQuantityOverflow) {
		return models.StockItem{}, ValidationErrors{quantityTooLarge("quantity")}
	}
	if err != nil {
		return models.StockItem{}, fmt.Errorf("add stock: %w", err)
	}

	e.logger.Info("stock added",
		zap.String("product", item.ProductName),
		zap.Int("added", in.Quantity),
		zap.Int("quantity", item.Quantity))
	e.invalidate(ctx)
	return item, nil
}

// DeleteProduct removes the product. Past sales of it stay in the ledger.
func (e *Engine) DeleteProduct(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if err := e.inventory.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete product %q: %w", name, err)
	}

	e.logger.Info("product deleted", zap.String("product", name))
	e.invalidate(ctx)
	return nil
}

// GetProduct returns the stored product, or ErrNotFound.
func (e *Engine) GetProduct(ctx context.Context, name string) (models.StockItem, error) {
	name = strings.TrimSpace(name)
	item, err := e.inventory.GetByName(ctx, name)
	if err != nil {
		return models.StockItem{}, fmt.Errorf("get product %q: %w", name, err)
	}
	return item, nil
}

func (e *Engine) ListStock(ctx context.Context) ([]models.StockItem, error) {
	items, err := e.inventory.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	return items, nil
}

type SaleInput struct {
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	// Date defaults to today when zero.
	Date models.Date `json:"date"`
}

func (in SaleInput) validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(in.ProductName) == "" {
		errs = append(errs, ValidationError{Field: "product_name", Description: "Product name is required"})
	}
	if in.QuantitySold <= 0 {
		errs = append(errs, ValidationError{Field: "quantity_sold", Description: "Quantity sold must be greater than zero"})
	} else if in.QuantitySold > MaxQuantity {
		errs = append(errs, quantityTooLarge("quantity_sold"))
	}
	if in.SalePrice.IsNegative() {
		errs = append(errs, ValidationError{Field: "sale_price", Description: "Sale price cannot be negative"})
	} else if ve, bad := amountError("sale_price", "Sale price", in.SalePrice); bad {
		errs = append(errs, ve)
	}
	return errs.orNil()
}

type SaleConfirmation struct {
	ProductName       string            `json:"product_name"`
	QuantitySold      int               `json:"quantity_sold"`
	RemainingQuantity int               `json:"remaining_quantity"`
	Sale              models.SaleRecord `json:"sale"`
	Message           string            `json:"message"`
}

// SellProduct decrements stock and records the sale atomically. An unknown
// product and an oversell both fail with ErrInsufficientStock, leaving stock unchanged.
func (e *Engine) SellProduct(ctx context.Context, in SaleInput) (SaleConfirmation, error) {
	if err := in.validate(); err != nil {
		return SaleConfirmation{}, err
	}

	sale := models.SaleRecord{
		ProductName:  strings.TrimSpace(in.ProductName),
		QuantitySold: in.QuantitySold,
		SalePrice:    in.SalePrice,
		Date:         in.Date,
	}
	if sale.Date.IsZero() {
		sale.Date = e.Today()
	}

	stored, remaining, err := e.sales.RecordSale(ctx, sale)
	if err != nil {
		return SaleConfirmation{}, fmt.Errorf("sell %q: %w", sale.ProductName, err)
	}

	e.logger.Info("sale recorded",
		zap.String("product", stored.ProductName),
		zap.Int("sold", stored.QuantitySold),
		zap.Int("remaining", remaining))
	e.invalidate(ctx)

	return SaleConfirmation{
		ProductName:       stored.ProductName,
		QuantitySold:      stored.QuantitySold,
		RemainingQuantity: remaining,
		Sale:              stored,
		Message:           fmt.Sprintf("%d units of %s sold successfully!", stored.QuantitySold, stored.ProductName),
	}, nil
}

func (e *Engine) ListSales(ctx context.Context) ([]models.SaleRecord, error) {
	sales, _, err := e.sales.List(ctx, repo.SalesFilter{})
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

// ListSalesPage is ListSales with optional pagination; total counts every sale.
func (e *Engine) ListSalesPage(ctx context.Context, offset, limit *int) ([]models.SaleRecord, int, error) {
	sales, total, err := e.sales.List(ctx, repo.SalesFilter{Offset: offset, Limit: limit})
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	return sales, total, nil
}

type LedgerStatus string

const (
	LedgerOK        LedgerStatus = "ok"
	LedgerNoMatches LedgerStatus = "no_matches"
	LedgerEmpty     LedgerStatus = "empty"
)

const (
	MessageNoSales        = "No sales data available!"
	MessageNoSalesInRange = "No sales data for the selected period!"
)

type LedgerResult struct {
	Timeframe Timeframe           `json:"timeframe"`
	AsOf      models.Date         `json:"as_of"`
	Status    LedgerStatus        `json:"status"`
	Message   string              `json:"message,omitempty"`
	Records   []models.SaleRecord `json:"records"`
}

// LedgerForWindow returns the sales inside the timeframe ending on asOf (today when zero).
// Empty results are reported through Status, not as errors.
func (e *Engine) LedgerForWindow(ctx context.Context, tf Timeframe, asOf models.Date) (LedgerResult, error) {
	tf, err := ParseTimeframe(string(tf))
	if err != nil {
		return LedgerResult{}, err
	}
	if asOf.IsZero() {
		asOf = e.Today()
	}

	result := LedgerResult{Timeframe: tf, AsOf: asOf, Status: LedgerOK}

	all, total, err := e.sales.List(ctx, repo.SalesFilter{})
	if err != nil {
		return LedgerResult{}, fmt.Errorf("ledger %s: %w", tf, err)
	}
	if total == 0 {
		result.Status, result.Message, result.Records = LedgerEmpty, MessageNoSales, []models.SaleRecord{}
		return result, nil
	}

	since, until, bounded := tf.Bounds(asOf)
	if !bounded {
		result.Records = all
		return result, nil
	}

	window := repo.SalesFilter{Since: &since, Until: &until}
	result.Records = []models.SaleRecord{}
	for _, sale := range all {
		if window.Matches(sale) {
			result.Records = append(result.Records, sale)
		}
	}
	if len(result.Records) == 0 {
		result.Status, result.Message = LedgerNoMatches, MessageNoSalesInRange
	}
	return result, nil
}

type ExpenseInput struct {
	ExpenseName string          `json:"expense_name"`
	Amount      decimal.Decimal `json:"amount"`
}

func (in ExpenseInput) validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(in.ExpenseName) == "" {
		errs = append(errs, ValidationError{Field: "expense_name", Description: "Expense name is required"})
	}
	if in.Amount.IsNegative() {
		errs = append(errs, ValidationError{Field: "amount", Description: "Amount cannot be negative"})
	} else if ve, bad := amountError("amount", "Amount", in.Amount); bad {
		errs = append(errs, ve)
	}
	return errs.orNil()
}

func (e *Engine) AddExpense(ctx context.Context, in ExpenseInput) (models.ExpenseRecord, error) {
	if err := in.validate(); err != nil {
		return models.ExpenseRecord{}, err
	}

	rec, err := e.expenses.Create(ctx, models.ExpenseRecord{
		ExpenseName: strings.TrimSpace(in.ExpenseName),
		Amount:      in.Amount,
	})
	if err != nil {
		return models.ExpenseRecord{}, fmt.Errorf("add expense: %w", err)
	}

	e.logger.Info("expense recorded", zap.String("expense", rec.ExpenseName), zap.String("amount", rec.Amount.String()))
	e.invalidate(ctx)
	return rec, nil
}

func (e *Engine) ListExpenses(ctx context.Context) ([]models.ExpenseRecord, error) {
	expenses, err := e.expenses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Report builds the dashboard for asOf (today when zero), served from the cache when possible.
func (e *Engine) Report(ctx context.Context, asOf models.Date) (reporting.Report, error) {
	if asOf.IsZero() {
		asOf = e.Today()
	}

	cacheable := true
	gen, err := e.cache.Generation(ctx)
	if err != nil {
		cacheable = false
		e.logger.Warn("report cache unavailable", zap.Error(err))
	} else if cached, ok, err := e.cache.Get(ctx, gen, asOf); err != nil {
		e.logger.Warn("report cache read failed", zap.Error(err))
	} else if ok {
		return *cached, nil
	}

	stock, err := e.ListStock(ctx)
	if err != nil {
		return reporting.Report{}, err
	}
	sales, err := e.ListSales(ctx)
	if err != nil {
		return reporting.Report{}, err
	}
	expenses, err := e.ListExpenses(ctx)
	if err != nil {
		return reporting.Report{}, err
	}
	metrics, err := e.metrics.GetDashboardMetrics(ctx, reporting.RestockThreshold)
	if err != nil {
		return reporting.Report{}, fmt.Errorf("dashboard metrics: %w", err)
	}

	report := reporting.Build(asOf, metrics, stock, sales, expenses)

	// Without a known generation nothing is stored.
	if cacheable {
		if err := e.cache.Set(ctx, gen, asOf, &report); err != nil {
			e.logger.Warn("report cache write failed", zap.Error(err))
		}
	}
	return report, nil
}

func (e *Engine) invalidate(ctx context.Context) {
	if err := e.cache.Invalidate(ctx); err != nil {
		e.logger.Warn("report cache invalidation failed", zap.Error(err))
	}
}
