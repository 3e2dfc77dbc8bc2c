package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/rogerio-castellano/retail-tracker/internal/db"
	handler "github.com/rogerio-castellano/retail-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/retail-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/retail-tracker/internal/http/router"
	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/repo"
)

// DatabaseURLEnv names the Postgres instance the suite runs against. The suite is skipped without it.
const DatabaseURLEnv = "RETAIL_TEST_DATABASE_URL"

var database *sql.DB

// setupTestRepos connects, creates the schema and points the handlers at a Postgres-backed engine.
func setupTestRepos() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	database, err = db.Connect(ctx, os.Getenv(DatabaseURLEnv))
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx, database); err != nil {
		return err
	}

	handler.SetEngine(ledger.NewEngine(ledger.Repositories{
		Inventory: repo.NewPostgresInventoryRepository(database, repo.DefaultQueryTimeout),
		Sales:     repo.NewPostgresSalesRepository(database, repo.DefaultQueryTimeout),
		Expenses:  repo.NewPostgresExpenseRepository(database, repo.DefaultQueryTimeout),
		Metrics:   repo.NewPostgresMetricsRepository(database, repo.DefaultQueryTimeout),
	}))
	return nil
}

func newRouter() http.Handler {
	return router.NewRouter(rl.New(1000, 1000))
}

func clearAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, "TRUNCATE TABLE inventory, sales, expenses RESTART IDENTITY")
	if err != nil {
		fmt.Println(fmt.Errorf("failed to truncate tables: %w", err))
	}
}

func postJSON(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
