package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AddStockHandler godoc
// @Summary Add stock
// @Description Creates the product, or adds the quantity to an existing product keeping its prices, supplier and expiry
// @Tags stock
// @Accept json
// @Produce json
// @Param item body StockRequest true "Stock to add"
// @Success 201 {object} models.StockItem
// @Failure 400 {array} ledger.ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /stock [post]
func AddStockHandler(w http.ResponseWriter, r *http.Request) {
	var req StockRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	item, err := engine.AddStock(r.Context(), req.input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, item)
}

// GetStockHandler godoc
// @Summary List stock
// @Tags stock
// @Produce json
// @Success 200 {array} models.StockItem
// @Failure 500 {string} string "Internal error"
// @Router /stock [get]
func GetStockHandler(w http.ResponseWriter, r *http.Request) {
	items, err := engine.ListStock(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, items)
}

// GetProductHandler godoc
// @Summary Get a product
// @Tags stock
// @Produce json
// @Param name path string true "Product name"
// @Success 200 {object} models.StockItem
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /stock/{name} [get]
func GetProductHandler(w http.ResponseWriter, r *http.Request) {
	item, err := engine.GetProduct(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, item)
}

// DeleteStockHandler godoc
// @Summary Delete a product
// @Description Removes the product from inventory. Its past sales are kept.
// @Tags stock
// @Param name path string true "Product name"
// @Success 204
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /stock/{name} [delete]
func DeleteStockHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := engine.DeleteProduct(r.Context(), name); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
