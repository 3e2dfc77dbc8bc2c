package handlers

import "net/http"

// AddExpenseHandler godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body ExpenseRequest true "Expense"
// @Success 201 {object} models.ExpenseRecord
// @Failure 400 {array} ledger.ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /expenses [post]
func AddExpenseHandler(w http.ResponseWriter, r *http.Request) {
	var req ExpenseRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	rec, err := engine.AddExpense(r.Context(), req.input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, rec)
}

// GetExpensesHandler godoc
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Success 200 {array} models.ExpenseRecord
// @Failure 500 {string} string "Internal error"
// @Router /expenses [get]
func GetExpensesHandler(w http.ResponseWriter, r *http.Request) {
	expenses, err := engine.ListExpenses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, expenses)
}
