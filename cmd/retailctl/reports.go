package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/rogerio-castellano/retail-tracker/internal/reporting"
)

type expenseCmd struct {
	name, amount string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return "retailctl expense -name <expense> -amount <amount>\n"
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Expense name")
	f.StringVar(&c.amount, "amount", "", "Amount")
}

func (c *expenseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount("amount", c.amount)
	if err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	rec, err := a.engine.AddExpense(ctx, ledger.ExpenseInput{ExpenseName: c.name, Amount: amount})
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Expense %s of %s recorded.\n", rec.ExpenseName, reporting.FormatMoney(rec.Amount, a.cfg.Reporting.Currency))
	return subcommands.ExitSuccess
}

type expensesCmd struct{}

func (*expensesCmd) Name() string           { return "expenses" }
func (*expensesCmd) Synopsis() string       { return "list every recorded expense" }
func (*expensesCmd) Usage() string          { return "retailctl expenses\n" }
func (*expensesCmd) SetFlags(*flag.FlagSet) {}

func (*expensesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	expenses, err := a.engine.ListExpenses(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	if len(expenses) == 0 {
		fmt.Println("No expenses recorded.")
		return subcommands.ExitSuccess
	}

	cur := a.cfg.Reporting.Currency
	var b strings.Builder
	b.WriteString("| Expense | Amount |\n|---|---:|\n")
	for _, e := range expenses {
		fmt.Fprintf(&b, "| %s | %s |\n", reporting.EscapeCell(e.ExpenseName), reporting.FormatMoney(e.Amount, cur))
	}
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", reporting.FormatMoney(reporting.ExpenseReport(expenses).TotalExpenses, cur))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type reportCmd struct {
	asOf string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full business report" }
func (*reportCmd) Usage() string {
	return `retailctl report [-as-of YYYY-MM-DD]

  Displays the summary, valuation, restock, breakeven and alert sections.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "as-of", "", "Report date (defaults to today)")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := models.ParseDate(c.asOf)
	if err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	report, err := a.engine.Report(ctx, asOf)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	printMarkdown(report.Markdown(a.cfg.Reporting.Currency))
	return subcommands.ExitSuccess
}
