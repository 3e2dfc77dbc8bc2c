package repo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/shopspring/decimal"
)

func newMemoryRepos() (*InMemoryInventoryRepository, *InMemorySalesRepository, *InMemoryExpenseRepository, *InMemoryMetricsRepository) {
	store := NewMemoryStore()
	return NewInMemoryInventoryRepository(store),
		NewInMemorySalesRepository(store),
		NewInMemoryExpenseRepository(store),
		NewInMemoryMetricsRepository(store)
}

func widget(qty int) models.StockItem {
	return models.StockItem{
		ProductName:  "Widget",
		Quantity:     qty,
		CostPrice:    decimal.RequireFromString("2.00"),
		SellingPrice: decimal.RequireFromString("3.50"),
		Supplier:     "Acme",
	}
}

func TestUpsertAccumulatesQuantityOnly(t *testing.T) {
	ctx := context.Background()
	inv, _, _, _ := newMemoryRepos()

	first, err := inv.Upsert(ctx, widget(5))
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second := widget(3)
	second.CostPrice = decimal.RequireFromString("9.99")
	second.Supplier = "Other"
	second.ExpiryDate = models.NewDate(2030, time.January, 1)

	merged, err := inv.Upsert(ctx, second)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if merged.ID != first.ID {
		t.Errorf("expected same id %d, got %d", first.ID, merged.ID)
	}
	if merged.Quantity != 8 {
		t.Errorf("expected quantity 8, got %d", merged.Quantity)
	}
	if !merged.CostPrice.Equal(decimal.RequireFromString("2.00")) || merged.Supplier != "Acme" || !merged.ExpiryDate.IsZero() {
		t.Errorf("expected original fields to be kept, got %+v", merged)
	}

	all, _ := inv.GetAll(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 item, got %d", len(all))
	}
}

func TestUpsertRejectsQuantityOverflow(t *testing.T) {
	ctx := context.Background()
	inv, _, _, _ := newMemoryRepos()

	if _, err := inv.Upsert(ctx, widget(MaxQuantity-1)); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if _, err := inv.Upsert(ctx, widget(1)); err != nil {
		t.Fatalf("upsert up to the limit failed: %v", err)
	}

	_, err := inv.Upsert(ctx, widget(1))
	if !errors.Is(err, ErrQuantityOverflow) {
		t.Fatalf("expected ErrQuantityOverflow, got %v", err)
	}

	stored, err := inv.GetByName(ctx, "Widget")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Quantity != MaxQuantity {
		t.Errorf("expected quantity to stay at %d, got %d", MaxQuantity, stored.Quantity)
	}
}

func TestGetAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	inv, _, _, _ := newMemoryRepos()
	_, _ = inv.Upsert(ctx, widget(5))

	all, _ := inv.GetAll(ctx)
	all[0].Quantity = 999

	stored, _ := inv.GetByName(ctx, "Widget")
	if stored.Quantity != 5 {
		t.Errorf("snapshot mutation leaked into store: %d", stored.Quantity)
	}
}

func TestDeleteMissingProduct(t *testing.T) {
	ctx := context.Background()
	inv, _, _, _ := newMemoryRepos()
	_, _ = inv.Upsert(ctx, widget(5))

	if err := inv.Delete(ctx, "Gadget"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if all, _ := inv.GetAll(ctx); len(all) != 1 {
		t.Errorf("expected store unchanged, got %d items", len(all))
	}

	if err := inv.Delete(ctx, "Widget"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := inv.GetByName(ctx, "Widget"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected product to be gone, got %v", err)
	}
}

func TestRecordSale(t *testing.T) {
	ctx := context.Background()
	inv, sales, _, _ := newMemoryRepos()
	_, _ = inv.Upsert(ctx, widget(5))

	sale := models.SaleRecord{
		ProductName:  "Widget",
		QuantitySold: 2,
		SalePrice:    decimal.RequireFromString("3.50"),
		Date:         models.NewDate(2024, time.January, 10),
	}

	stored, remaining, err := sales.RecordSale(ctx, sale)
	if err != nil {
		t.Fatalf("sale failed: %v", err)
	}
	if stored.ID != 1 || remaining != 3 {
		t.Errorf("expected id 1 and 3 remaining, got id %d and %d", stored.ID, remaining)
	}

	sale.QuantitySold = 4
	if _, _, err := sales.RecordSale(ctx, sale); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	sale.ProductName = "Gadget"
	sale.QuantitySold = 1
	if _, _, err := sales.RecordSale(ctx, sale); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock for unknown product, got %v", err)
	}

	item, _ := inv.GetByName(ctx, "Widget")
	if item.Quantity != 3 {
		t.Errorf("expected failed sells to leave quantity 3, got %d", item.Quantity)
	}
	if list, total, _ := sales.List(ctx, SalesFilter{}); total != 1 || len(list) != 1 {
		t.Errorf("expected exactly one sale, got %d", total)
	}
}

func TestConcurrentSalesNeverOversell(t *testing.T) {
	ctx := context.Background()
	inv, sales, _, _ := newMemoryRepos()
	_, _ = inv.Upsert(ctx, widget(50))

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := sales.RecordSale(ctx, models.SaleRecord{ProductName: "Widget", QuantitySold: 1, Date: models.Today()})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	item, _ := inv.GetByName(ctx, "Widget")
	if succeeded != 50 || item.Quantity != 0 {
		t.Errorf("expected 50 sales and empty stock, got %d sales and quantity %d", succeeded, item.Quantity)
	}
}

func TestSalesListFilterAndPagination(t *testing.T) {
	ctx := context.Background()
	inv, sales, _, _ := newMemoryRepos()
	_, _ = inv.Upsert(ctx, widget(100))

	for day := 1; day <= 5; day++ {
		_, _, err := sales.RecordSale(ctx, models.SaleRecord{
			ProductName: "Widget", QuantitySold: day, Date: models.NewDate(2024, time.March, day),
		})
		if err != nil {
			t.Fatalf("sale failed: %v", err)
		}
	}

	since := models.NewDate(2024, time.March, 2)
	until := models.NewDate(2024, time.March, 4)
	offset, limit := 1, 1

	tests := []struct {
		name      string
		filter    SalesFilter
		wantQty   []int
		wantTotal int
	}{
		{"all", SalesFilter{}, []int{1, 2, 3, 4, 5}, 5},
		{"bounded", SalesFilter{Since: &since, Until: &until}, []int{2, 3, 4}, 3},
		{"paged", SalesFilter{Since: &since, Until: &until, Offset: &offset, Limit: &limit}, []int{3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := sales.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}
			if total != tt.wantTotal || len(got) != len(tt.wantQty) {
				t.Fatalf("expected %d of %d, got %d of %d", len(tt.wantQty), tt.wantTotal, len(got), total)
			}
			for i, s := range got {
				if s.QuantitySold != tt.wantQty[i] {
					t.Errorf("position %d: expected qty %d, got %d", i, tt.wantQty[i], s.QuantitySold)
				}
			}
		})
	}
}

func TestExpensesAllowDuplicates(t *testing.T) {
	ctx := context.Background()
	_, _, expenses, _ := newMemoryRepos()

	for range 2 {
		if _, err := expenses.Create(ctx, models.ExpenseRecord{ExpenseName: "Rent", Amount: decimal.NewFromInt(100)}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	all, _ := expenses.GetAll(ctx)
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 2 {
		t.Errorf("expected two sequential expenses, got %+v", all)
	}
}

func TestDashboardMetrics(t *testing.T) {
	ctx := context.Background()
	inv, sales, _, metrics := newMemoryRepos()

	_, _ = inv.Upsert(ctx, widget(20))
	gadget := widget(5)
	gadget.ProductName = "Gadget"
	_, _ = inv.Upsert(ctx, gadget)

	_, _, _ = sales.RecordSale(ctx, models.SaleRecord{ProductName: "Gadget", QuantitySold: 2, Date: models.Today()})
	_, _, _ = sales.RecordSale(ctx, models.SaleRecord{ProductName: "Widget", QuantitySold: 4, Date: models.Today()})

	m, err := metrics.GetDashboardMetrics(ctx, 10)
	if err != nil {
		t.Fatalf("metrics failed: %v", err)
	}

	want := Metrics{TotalProducts: 2, TotalSales: 2, LowStockCount: 1, TopSeller: TopSeller{Name: "Widget", UnitsSold: 4}}
	if m != want {
		t.Errorf("expected %+v, got %+v", want, m)
	}
}
