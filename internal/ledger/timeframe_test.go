package ledger

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/rogerio-castellano/retail-tracker/internal/repo"
)

func TestParseTimeframe(t *testing.T) {
	for in, want := range map[string]Timeframe{"daily": Daily, "WEEKLY": Weekly, " Monthly ": Monthly, "all": All} {
		got, err := ParseTimeframe(in)
		if err != nil || got != want {
			t.Errorf("ParseTimeframe(%q): expected %v, got %v (%v)", in, want, got, err)
		}
	}

	var verrs ValidationErrors
	if _, err := ParseTimeframe("yearly"); !errors.As(err, &verrs) {
		t.Errorf("expected ValidationErrors, got %v", err)
	}
}

func TestBounds(t *testing.T) {
	asOf := models.NewDate(2024, time.March, 31)

	tests := []struct {
		tf        Timeframe
		wantSince models.Date
	}{
		{Daily, asOf},
		{Weekly, models.NewDate(2024, time.March, 24)},
		{Monthly, models.NewDate(2024, time.February, 29)},
	}

	for _, tt := range tests {
		since, until, ok := tt.tf.Bounds(asOf)
		if !ok || since != tt.wantSince || until != asOf {
			t.Errorf("%s: expected [%v, %v], got [%v, %v] ok=%v", tt.tf, tt.wantSince, asOf, since, until, ok)
		}
	}

	if _, _, ok := All.Bounds(asOf); ok {
		t.Error("expected All to be unbounded")
	}
}

func TestLedgerForWindow(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	empty, err := e.LedgerForWindow(ctx, Daily, models.Date{})
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	if empty.Status != LedgerEmpty || empty.Message != MessageNoSales || empty.AsOf != models.NewDate(2024, time.January, 12) {
		t.Errorf("unexpected empty ledger %+v", empty)
	}

	_, _ = e.AddStock(ctx, widgetInput(100))
	for _, day := range []models.Date{
		models.NewDate(2023, time.December, 9),
		models.NewDate(2023, time.December, 10),
		models.NewDate(2024, time.January, 3),
		models.NewDate(2024, time.January, 9),
		models.NewDate(2024, time.January, 10),
	} {
		if _, err := e.SellProduct(ctx, SaleInput{ProductName: "Widget", QuantitySold: 1, SalePrice: d("5"), Date: day}); err != nil {
			t.Fatalf("sell: %v", err)
		}
	}

	asOf := models.NewDate(2024, time.January, 10)
	tests := []struct {
		tf         Timeframe
		wantDays   []int
		wantStatus LedgerStatus
	}{
		{Daily, []int{10}, LedgerOK},
		{Weekly, []int{3, 9, 10}, LedgerOK},
		{Monthly, []int{10, 3, 9, 10}, LedgerOK},
		{All, []int{9, 10, 3, 9, 10}, LedgerOK},
	}

	for _, tt := range tests {
		t.Run(string(tt.tf), func(t *testing.T) {
			res, err := e.LedgerForWindow(ctx, tt.tf, asOf)
			if err != nil {
				t.Fatalf("ledger: %v", err)
			}
			var days []int
			for _, r := range res.Records {
				days = append(days, r.Date.Day())
			}
			if res.Status != tt.wantStatus || !slices.Equal(days, tt.wantDays) {
				t.Errorf("expected %v %v, got %v %v", tt.wantStatus, tt.wantDays, res.Status, days)
			}
		})
	}

	none, _ := e.LedgerForWindow(ctx, Daily, models.NewDate(2024, time.January, 11))
	if none.Status != LedgerNoMatches || none.Message != MessageNoSalesInRange || len(none.Records) != 0 {
		t.Errorf("unexpected no-match ledger %+v", none)
	}

	all, _ := e.LedgerForWindow(ctx, All, asOf)
	sales, _ := e.ListSales(ctx)
	if !slices.Equal(all.Records, sales) {
		t.Error("expected All window to equal ListSales")
	}
}

type countingSales struct {
	repo.SalesRepository
	lists int
}

func (c *countingSales) List(ctx context.Context, f repo.SalesFilter) ([]models.SaleRecord, int, error) {
	c.lists++
	return c.SalesRepository.List(ctx, f)
}

func TestLedgerForWindowReadsSalesOnce(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore()
	sales := &countingSales{SalesRepository: repo.NewInMemorySalesRepository(store)}
	e := NewEngine(Repositories{
		Inventory: repo.NewInMemoryInventoryRepository(store),
		Sales:     sales,
		Expenses:  repo.NewInMemoryExpenseRepository(store),
		Metrics:   repo.NewInMemoryMetricsRepository(store),
	}, WithClock(func() time.Time { return fixedNow }))

	_, _ = e.AddStock(ctx, widgetInput(10))
	for _, day := range []int{2, 11, 12} {
		if _, err := e.SellProduct(ctx, SaleInput{ProductName: "Widget", QuantitySold: 1, SalePrice: d("5"), Date: models.NewDate(2024, time.January, day)}); err != nil {
			t.Fatalf("sell: %v", err)
		}
	}

	sales.lists = 0
	res, err := e.LedgerForWindow(ctx, Weekly, models.Date{})
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	if sales.lists != 1 {
		t.Errorf("expected one sales read, got %d", sales.lists)
	}
	if len(res.Records) != 2 || res.Records[0].Date.Day() != 11 || res.Records[1].Date.Day() != 12 {
		t.Errorf("unexpected weekly records %+v", res.Records)
	}
}
