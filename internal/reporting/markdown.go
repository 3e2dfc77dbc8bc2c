package reporting

import (
	"fmt"
	"strings"
)

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// EscapeCell makes free text safe inside a markdown table cell.
func EscapeCell(s string) string { return cellEscaper.Replace(s) }

// Markdown renders the report as a markdown document for terminal display.
func (r Report) Markdown(currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Retail report for %s\n\n", r.AsOf)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Products | %d |\n", r.Metrics.TotalProducts)
	fmt.Fprintf(&b, "| Sales recorded | %d |\n", r.Metrics.TotalSales)
	fmt.Fprintf(&b, "| Items sold | %d |\n", r.Sales.TotalItemsSold)
	fmt.Fprintf(&b, "| Total revenue | %s |\n", FormatMoney(r.Sales.TotalRevenue, currency))
	fmt.Fprintf(&b, "| Total expenses | %s |\n", FormatMoney(r.Expenses.TotalExpenses, currency))
	fmt.Fprintf(&b, "| Net profit | %s |\n", FormatMoney(r.NetProfit, currency))
	fmt.Fprintf(&b, "| Stock value | %s |\n", FormatMoney(r.Valuation.TotalStockValue, currency))
	fmt.Fprintf(&b, "| Potential revenue | %s |\n", FormatMoney(r.Valuation.PotentialRevenue, currency))
	if r.Metrics.TopSeller.Name != "" {
		fmt.Fprintf(&b, "| Top seller | %s (%d units) |\n", EscapeCell(r.Metrics.TopSeller.Name), r.Metrics.TopSeller.UnitsSold)
	}

	if len(r.Restock) > 0 {
		b.WriteString("\n## Restock suggestions\n\n| Product | Quantity | Status | Breakeven price |\n|---|---:|---|---:|\n")
		for i, s := range r.Restock {
			fmt.Fprintf(&b, "| %s | %d | %s | %s |\n", EscapeCell(s.ProductName), s.Quantity, s.Status,
				FormatMoney(r.Breakeven[i].BreakevenPrice, currency))
		}
	}

	if len(r.Expiring) > 0 {
		b.WriteString("\n## Expiring items\n\n| Product | Quantity | Expiry |\n|---|---:|---|\n")
		for _, item := range r.Expiring {
			fmt.Fprintf(&b, "| %s | %d | %s |\n", EscapeCell(item.ProductName), item.Quantity, item.ExpiryDate)
		}
	}

	if len(r.RevenueByProduct) > 0 {
		b.WriteString("\n## Revenue by product\n\n| Product | Units | Revenue |\n|---|---:|---:|\n")
		for _, p := range r.RevenueByProduct {
			fmt.Fprintf(&b, "| %s | %d | %s |\n", EscapeCell(p.ProductName), p.UnitsSold, FormatMoney(p.Revenue, currency))
		}
	}

	if len(r.ExpensesByName) > 0 {
		b.WriteString("\n## Expenses\n\n| Expense | Amount |\n|---|---:|\n")
		for _, e := range r.ExpensesByName {
			fmt.Fprintf(&b, "| %s | %s |\n", EscapeCell(e.ExpenseName), FormatMoney(e.Amount, currency))
		}
	}

	return b.String()
}
