package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/rogerio-castellano/retail-tracker/internal/config"
	"github.com/rogerio-castellano/retail-tracker/internal/db"
	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/repo"
)

var configFile = flag.String("config", os.Getenv("RETAIL_CONFIG"), "Path to an optional config file")

var errNoDatabase = errors.New("DATABASE_URL is not set")

// app is what every command needs: the loaded config, the database and an engine over it.
type app struct {
	cfg    *config.Config
	db     *sql.DB
	engine *ledger.Engine
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if cfg.Database.URL == "" {
		return nil, errNoDatabase
	}

	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	loc := cfg.Location()
	timeout := cfg.Database.QueryTimeout
	engine := ledger.NewEngine(ledger.Repositories{
		Inventory: repo.NewPostgresInventoryRepository(database, timeout),
		Sales:     repo.NewPostgresSalesRepository(database, timeout),
		Expenses:  repo.NewPostgresExpenseRepository(database, timeout),
		Metrics:   repo.NewPostgresMetricsRepository(database, timeout),
	}, ledger.WithClock(func() time.Time { return time.Now().In(loc) }))

	return &app{cfg: cfg, db: database, engine: engine}, nil
}

func (a *app) Close() error { return a.db.Close() }

func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

func printError(err error) {
	var verrs ledger.ValidationErrors
	if errors.As(err, &verrs) {
		for _, v := range verrs {
			fmt.Fprintf(os.Stderr, "Error: %s: %s\n", v.Field, v.Description)
		}
		return
	}
	switch {
	case errors.Is(err, ledger.ErrInsufficientStock):
		fmt.Fprintln(os.Stderr, "Error: Not enough stock")
	case errors.Is(err, ledger.ErrNotFound):
		fmt.Fprintln(os.Stderr, "Error: product not found")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
