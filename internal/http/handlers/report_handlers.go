package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/retail-tracker/internal/reporting"
)

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// GetRestockHandler godoc
// @Summary Restock suggestions
// @Description Items below 10 units are flagged "Low Stock - Restock Needed"
// @Tags reports
// @Produce json
// @Success 200 {array} reporting.RestockSuggestion
// @Failure 500 {string} string "Internal error"
// @Router /reports/restock [get]
func GetRestockHandler(w http.ResponseWriter, r *http.Request) {
	stock, err := engine.ListStock(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, reporting.RestockSuggestions(stock))
}

// GetBreakevenHandler godoc
// @Summary Breakeven prices
// @Description Cost price times 1.25 for every item
// @Tags reports
// @Produce json
// @Success 200 {array} reporting.BreakevenPrice
// @Failure 500 {string} string "Internal error"
// @Router /reports/breakeven [get]
func GetBreakevenHandler(w http.ResponseWriter, r *http.Request) {
	stock, err := engine.ListStock(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, reporting.BreakevenPrices(stock))
}

// GetSummaryHandler godoc
// @Summary Revenue, expenses and net profit
// @Tags reports
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 500 {string} string "Internal error"
// @Router /reports/summary [get]
func GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := engine.ListSales(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	expenses, err := engine.ListExpenses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	s := reporting.SalesReport(sales)
	e := reporting.ExpenseReport(expenses)
	net := reporting.NetProfit(s, e)

	respond(w, r, http.StatusOK, SummaryResponse{
		Sales:     s,
		Expenses:  e,
		NetProfit: net,
		Formatted: FormattedSummary{
			TotalRevenue:  reporting.FormatMoney(s.TotalRevenue, currency),
			TotalExpenses: reporting.FormatMoney(e.TotalExpenses, currency),
			NetProfit:     reporting.FormatMoney(net, currency),
		},
	})
}

// GetAlertsHandler godoc
// @Summary Low-stock and expiring items
// @Tags reports
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} AlertsResponse
// @Failure 400 {array} ledger.ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /reports/alerts [get]
func GetAlertsHandler(w http.ResponseWriter, r *http.Request) {
	asOf, err := dateParam(r, "as_of")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if asOf.IsZero() {
		asOf = engine.Today()
	}

	stock, err := engine.ListStock(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, AlertsResponse{
		AsOf:     asOf,
		LowStock: reporting.LowStockAlerts(stock),
		Expiring: reporting.ExpiringAlerts(stock, asOf),
	})
}

// GetDashboardHandler godoc
// @Summary Full dashboard report
// @Description Every report in one document, cached until the next write
// @Tags reports
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} reporting.Report
// @Failure 400 {array} ledger.ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /reports/dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	asOf, err := dateParam(r, "as_of")
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := engine.Report(r.Context(), asOf)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, report)
}
