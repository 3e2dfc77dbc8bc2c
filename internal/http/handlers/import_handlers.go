package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/shopspring/decimal"
)

var importColumns = []string{"product_name", "quantity", "cost_price", "selling_price"}

type importRow struct {
	num   int
	input ledger.StockInput
	err   error
}

// parseStockCSV reads rows keyed by header name. supplier and expiry_date columns are optional.
func parseStockCSV(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range importColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", col)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []importRow
	for num := 2; ; num++ { // header is row 1
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		in, err := stockRow(record, field)
		rows = append(rows, importRow{num: num, input: in, err: err})
	}
	return rows, nil
}

func stockRow(record []string, field func([]string, string) string) (ledger.StockInput, error) {
	qty, err := strconv.Atoi(field(record, "quantity"))
	if err != nil {
		return ledger.StockInput{}, errors.New("invalid quantity")
	}
	cost, err := decimal.NewFromString(field(record, "cost_price"))
	if err != nil {
		return ledger.StockInput{}, errors.New("invalid cost_price")
	}
	sell, err := decimal.NewFromString(field(record, "selling_price"))
	if err != nil {
		return ledger.StockInput{}, errors.New("invalid selling_price")
	}
	expiry, err := models.ParseDate(field(record, "expiry_date"))
	if err != nil {
		return ledger.StockInput{}, err
	}

	return ledger.StockInput{
		ProductName:  field(record, "product_name"),
		Quantity:     qty,
		CostPrice:    cost,
		SellingPrice: sell,
		Supplier:     field(record, "supplier"),
		ExpiryDate:   expiry,
	}, nil
}

// ImportStockHandler godoc
// @Summary Import stock via CSV
// @Description Each row is added like POST /stock. Columns: product_name, quantity, cost_price, selling_price and optionally supplier, expiry_date.
// @Description Rows are not rolled back: a storage failure stops the import and the 500 body reports what was already imported.
// @Tags stock
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportStockResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {object} ImportStockResult "Rows imported before the failure"
// @Router /stock/import [post]
func ImportStockHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseStockCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportStockResult{Errors: []ledger.ValidationError{}}
	for _, row := range rows {
		rowName := fmt.Sprintf("row %d", row.num)
		if row.err != nil {
			result.Errors = append(result.Errors, ledger.ValidationError{Field: rowName, Description: row.err.Error()})
			continue
		}

		_, err := engine.AddStock(r.Context(), row.input)
		var verrs ledger.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			for _, v := range verrs {
				result.Errors = append(result.Errors, ledger.ValidationError{Field: rowName, Description: v.Description})
			}
		case err != nil:
			logFailure(r, err)
			result.Error = fmt.Sprintf("%s: internal error, later rows were not imported", rowName)
			respond(w, r, http.StatusInternalServerError, result)
			return
		default:
			result.ImportedCount++
		}
	}

	respond(w, r, http.StatusOK, result)
}
