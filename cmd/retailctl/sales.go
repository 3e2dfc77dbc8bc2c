package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/rogerio-castellano/retail-tracker/internal/export"
	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/rogerio-castellano/retail-tracker/internal/reporting"
)

type sellCmd struct {
	name, price, date string
	quantity          int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale" }
func (*sellCmd) Usage() string {
	return `retailctl sell -name <product> -q <quantity> -price <unit price> [-d YYYY-MM-DD]

  Records a sale and takes the units out of stock. The date defaults to today.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name")
	f.IntVar(&c.quantity, "q", 0, "Quantity sold")
	f.StringVar(&c.price, "price", "", "Sale price per unit")
	f.StringVar(&c.date, "d", "", "Sale date (defaults to today)")
}

func (c *sellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := ledger.SaleInput{ProductName: c.name, QuantitySold: c.quantity}
	var err error
	if in.SalePrice, err = parseAmount("price", c.price); err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}
	if in.Date, err = models.ParseDate(c.date); err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	conf, err := a.engine.SellProduct(ctx, in)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	fmt.Println(conf.Message)
	fmt.Printf("%d units of %s left.\n", conf.RemainingQuantity, conf.ProductName)
	return subcommands.ExitSuccess
}

type salesCmd struct{}

func (*salesCmd) Name() string           { return "sales" }
func (*salesCmd) Synopsis() string       { return "list every recorded sale" }
func (*salesCmd) Usage() string          { return "retailctl sales\n" }
func (*salesCmd) SetFlags(*flag.FlagSet) {}

func (*salesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	sales, err := a.engine.ListSales(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	if len(sales) == 0 {
		fmt.Println(ledger.MessageNoSales)
		return subcommands.ExitSuccess
	}
	printMarkdown(salesTable(sales, a.cfg.Reporting.Currency))
	return subcommands.ExitSuccess
}

type ledgerCmd struct {
	timeframe, asOf, output, format string
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "show or export the sales of a time window" }
func (*ledgerCmd) Usage() string {
	return `retailctl ledger [-t Daily|Weekly|Monthly|All] [-as-of YYYY-MM-DD] [-o <file>] [-format csv|json]

  Shows the sales in the window ending on -as-of. With -o the window is
  exported to the file instead.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "t", string(ledger.All), "Timeframe (Daily, Weekly, Monthly, All)")
	f.StringVar(&c.asOf, "as-of", "", "Last day of the window (defaults to today)")
	f.StringVar(&c.output, "o", "", "Export to this file")
	f.StringVar(&c.format, "format", string(export.CSV), "Export format (csv, json)")
}

func (c *ledgerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tf, err := ledger.ParseTimeframe(c.timeframe)
	if err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}
	asOf, err := models.ParseDate(c.asOf)
	if err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}
	format, err := export.ParseFormat(c.format)
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

	result, err := a.engine.LedgerForWindow(ctx, tf, asOf)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}

	if c.output != "" {
		if err := writeFile(c.output, func(w io.Writer) error { return export.Write(w, format, result.Records) }); err != nil {
			printError(err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Sales ledger exported to %s (%d records).\n", c.output, len(result.Records))
		return subcommands.ExitSuccess
	}

	if result.Status != ledger.LedgerOK {
		fmt.Println(result.Message)
		return subcommands.ExitSuccess
	}
	printMarkdown(fmt.Sprintf("# %s sales ledger as of %s\n\n", result.Timeframe, result.AsOf) +
		salesTable(result.Records, a.cfg.Reporting.Currency))
	return subcommands.ExitSuccess
}

func salesTable(sales []models.SaleRecord, currency string) string {
	var b strings.Builder
	b.WriteString("| Product | Quantity | Price | Revenue | Date |\n|---|---:|---:|---:|---|\n")
	for _, s := range sales {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n",
			reporting.EscapeCell(s.ProductName), s.QuantitySold,
			reporting.FormatMoney(s.SalePrice, currency), reporting.FormatMoney(s.Revenue(), currency),
			s.Date)
	}
	return b.String()
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
