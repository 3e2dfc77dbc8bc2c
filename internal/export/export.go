// Package export serializes sales ledgers for download.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
)

type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
)

var Header = []string{"product_name", "quantity_sold", "sale_price", "date"}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", CSV:
		return CSV, nil
	case JSON:
		return JSON, nil
	default:
		return "", fmt.Errorf("format must be 'csv' or 'json', got %q", s)
	}
}

func (f Format) ContentType() string {
	if f == JSON {
		return "application/json"
	}
	return "text/csv"
}

// Filename suggests a download name such as sales_ledger_Weekly.csv.
func Filename(timeframe string, f Format) string {
	return fmt.Sprintf("sales_ledger_%s.%s", timeframe, f)
}

// WriteCSV writes the header row followed by one row per sale. An empty ledger yields only the header.
func WriteCSV(w io.Writer, sales []models.SaleRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, s := range sales {
		err := cw.Write([]string{
			s.ProductName,
			strconv.Itoa(s.QuantitySold),
			s.SalePrice.StringFixed(2),
			s.Date.String(),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// saleRow mirrors the CSV columns.
type saleRow struct {
	ProductName  string `json:"product_name"`
	QuantitySold int    `json:"quantity_sold"`
	SalePrice    string `json:"sale_price"`
	Date         string `json:"date"`
}

func WriteJSON(w io.Writer, sales []models.SaleRecord) error {
	rows := make([]saleRow, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, saleRow{
			ProductName:  s.ProductName,
			QuantitySold: s.QuantitySold,
			SalePrice:    s.SalePrice.StringFixed(2),
			Date:         s.Date.String(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func Write(w io.Writer, f Format, sales []models.SaleRecord) error {
	if f == JSON {
		return WriteJSON(w, sales)
	}
	return WriteCSV(w, sales)
}
