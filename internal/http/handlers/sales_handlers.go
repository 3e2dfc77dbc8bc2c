package handlers

import (
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/retail-tracker/internal/export"
	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"go.uber.org/zap"
)

// SellProductHandler godoc
// @Summary Sell a product
// @Description Decrements stock and records the sale in one step. The date defaults to today.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body SaleRequest true "Sale"
// @Success 201 {object} ledger.SaleConfirmation
// @Failure 400 {array} ledger.ValidationError
// @Failure 409 {string} string "Not enough stock"
// @Failure 500 {string} string "Internal error"
// @Router /sales [post]
func SellProductHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	conf, err := engine.SellProduct(r.Context(), req.input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, conf)
}

// GetSalesHandler godoc
// @Summary List sales
// @Tags sales
// @Produce json
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} SalesSearchResult
// @Failure 400 {array} ledger.ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	offset, err := intParam(r, "offset")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	sales, total, err := engine.ListSalesPage(r.Context(), offset, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, SalesSearchResult{Data: sales, Meta: Meta{TotalCount: total}})
}

func ledgerFromQuery(r *http.Request) (ledger.LedgerResult, error) {
	tf, err := ledger.ParseTimeframe(r.URL.Query().Get("timeframe"))
	if err != nil {
		return ledger.LedgerResult{}, err
	}
	asOf, err := dateParam(r, "as_of")
	if err != nil {
		return ledger.LedgerResult{}, err
	}
	return engine.LedgerForWindow(r.Context(), tf, asOf)
}

// GetLedgerHandler godoc
// @Summary Sales ledger for a time window
// @Description Daily is the as_of day, Weekly the 7 days before it, Monthly one calendar month before it, All everything. Bounds are inclusive.
// @Tags sales
// @Produce json
// @Param timeframe query string true "Daily, Weekly, Monthly or All"
// @Param as_of query string false "Window end date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} ledger.LedgerResult
// @Failure 400 {array} ledger.ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /sales/ledger [get]
func GetLedgerHandler(w http.ResponseWriter, r *http.Request) {
	result, err := ledgerFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}

// ExportLedgerHandler godoc
// @Summary Export the sales ledger
// @Description Downloads the window as CSV (product_name,quantity_sold,sale_price,date) or JSON. The X-Ledger-Status header carries the ledger status.
// @Tags sales
// @Produce text/csv,application/json
// @Param timeframe query string true "Daily, Weekly, Monthly or All"
// @Param as_of query string false "Window end date (YYYY-MM-DD), defaults to today"
// @Param format query string false "Export format (csv or json)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /sales/ledger/export [get]
func ExportLedgerHandler(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := ledgerFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename(string(result.Timeframe), format)))
	w.Header().Set("X-Ledger-Status", string(result.Status))

	if err := export.Write(w, format, result.Records); err != nil {
		logger.Warn("ledger export interrupted", zap.Error(err))
	}
}
