// Package archive keeps a daily snapshot of the dashboard report in MongoDB.
package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/rogerio-castellano/retail-tracker/internal/reporting"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store interface {
	SaveDailyReport(ctx context.Context, report reporting.Report) error
}

// DailyReport is the archived document.
type DailyReport struct {
	Date             string               `bson:"date"`
	GeneratedAt      time.Time            `bson:"generated_at"`
	TotalProducts    int                  `bson:"total_products"`
	TotalSales       int                  `bson:"total_sales"`
	LowStockCount    int                  `bson:"low_stock_count"`
	TopSeller        string               `bson:"top_seller,omitempty"`
	ItemsSold        int                  `bson:"items_sold"`
	TotalRevenue     primitive.Decimal128 `bson:"total_revenue"`
	TotalExpenses    primitive.Decimal128 `bson:"total_expenses"`
	NetProfit        primitive.Decimal128 `bson:"net_profit"`
	StockValue       primitive.Decimal128 `bson:"stock_value"`
	PotentialRevenue primitive.Decimal128 `bson:"potential_revenue"`
	RevenueByProduct []ProductRevenue     `bson:"revenue_by_product"`
}

type ProductRevenue struct {
	ProductName string               `bson:"product_name"`
	UnitsSold   int                  `bson:"units_sold"`
	Revenue     primitive.Decimal128 `bson:"revenue"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

// NewDailyReport converts a report into its archived form.
func NewDailyReport(r reporting.Report, generatedAt time.Time) (DailyReport, error) {
	doc := DailyReport{
		Date:             r.AsOf.String(),
		GeneratedAt:      generatedAt.UTC(),
		TotalProducts:    r.Metrics.TotalProducts,
		TotalSales:       r.Metrics.TotalSales,
		LowStockCount:    r.Metrics.LowStockCount,
		TopSeller:        r.Metrics.TopSeller.Name,
		ItemsSold:        r.Sales.TotalItemsSold,
		RevenueByProduct: make([]ProductRevenue, 0, len(r.RevenueByProduct)),
	}

	amounts := []struct {
		dst *primitive.Decimal128
		src decimal.Decimal
	}{
		{&doc.TotalRevenue, r.Sales.TotalRevenue},
		{&doc.TotalExpenses, r.Expenses.TotalExpenses},
		{&doc.NetProfit, r.NetProfit},
		{&doc.StockValue, r.Valuation.TotalStockValue},
		{&doc.PotentialRevenue, r.Valuation.PotentialRevenue},
	}
	for _, a := range amounts {
		v, err := toDecimal128(a.src)
		if err != nil {
			return DailyReport{}, fmt.Errorf("convert amount %s: %w", a.src, err)
		}
		*a.dst = v
	}

	for _, p := range r.RevenueByProduct {
		rev, err := toDecimal128(p.Revenue)
		if err != nil {
			return DailyReport{}, fmt.Errorf("convert revenue of %s: %w", p.ProductName, err)
		}
		doc.RevenueByProduct = append(doc.RevenueByProduct, ProductRevenue{
			ProductName: p.ProductName,
			UnitsSold:   p.UnitsSold,
			Revenue:     rev,
		})
	}
	return doc, nil
}

// MongoStore implements Store for MongoDB.
type MongoStore struct {
	client   *mongo.Client
	dbName   string
	collName string
}

func NewMongoStore(ctx context.Context, uri string, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client:   client,
		dbName:   dbName,
		collName: "daily_reports",
	}, nil
}

func (s *MongoStore) SaveDailyReport(ctx context.Context, report reporting.Report) error {
	doc, err := NewDailyReport(report, time.Now())
	if err != nil {
		return err
	}

	collection := s.client.Database(s.dbName).Collection(s.collName)
	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert daily report: %w", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
