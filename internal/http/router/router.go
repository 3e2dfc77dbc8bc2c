package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/retail-tracker/docs"
	"github.com/rogerio-castellano/retail-tracker/internal/http/handlers"
	mw "github.com/rogerio-castellano/retail-tracker/internal/http/middleware"
	rl "github.com/rogerio-castellano/retail-tracker/internal/http/rate_limiter"
)

// NewRouter wires every route. Mutating routes go through limiter when it is not nil.
func NewRouter(limiter *rl.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger)
	r.Use(chimw.Recoverer)

	limited := func(r chi.Router) chi.Router {
		if limiter == nil {
			return r
		}
		return r.With(limiter.Middleware)
	}

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/stock", func(r chi.Router) {
		r.Get("/", handlers.GetStockHandler)
		limited(r).Post("/", handlers.AddStockHandler)
		limited(r).Post("/import", handlers.ImportStockHandler)
		r.Get("/{name}", handlers.GetProductHandler)
		limited(r).Delete("/{name}", handlers.DeleteStockHandler)
	})

	r.Route("/sales", func(r chi.Router) {
		r.Get("/", handlers.GetSalesHandler)
		limited(r).Post("/", handlers.SellProductHandler)
		r.Get("/ledger", handlers.GetLedgerHandler)
		r.Get("/ledger/export", handlers.ExportLedgerHandler)
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", handlers.GetExpensesHandler)
		limited(r).Post("/", handlers.AddExpenseHandler)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/restock", handlers.GetRestockHandler)
		r.Get("/breakeven", handlers.GetBreakevenHandler)
		r.Get("/summary", handlers.GetSummaryHandler)
		r.Get("/alerts", handlers.GetAlertsHandler)
		r.Get("/dashboard", handlers.GetDashboardHandler)
	})

	return r
}
