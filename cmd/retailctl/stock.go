package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/retail-tracker/internal/db"
	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/rogerio-castellano/retail-tracker/internal/reporting"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the database tables" }
func (*initCmd) Usage() string {
	return `retailctl init

  Creates the inventory, sales and expenses tables when they do not exist.
`
}
func (*initCmd) SetFlags(*flag.FlagSet) {}

func (*initCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := db.EnsureSchema(ctx, a.db); err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	fmt.Println("Schema ready.")
	return subcommands.ExitSuccess
}

type addStockCmd struct {
	name, cost, selling, supplier, expiry string
	quantity                              int
}

func (*addStockCmd) Name() string     { return "add-stock" }
func (*addStockCmd) Synopsis() string { return "add a product or restock an existing one" }
func (*addStockCmd) Usage() string {
	return `retailctl add-stock -name <product> -q <quantity> -cost <price> -price <price> [-supplier <name>] [-expiry YYYY-MM-DD]

  Adds stock. For an existing product only the quantity changes.
`
}

func (c *addStockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name")
	f.IntVar(&c.quantity, "q", 0, "Quantity to add")
	f.StringVar(&c.cost, "cost", "", "Cost price per unit")
	f.StringVar(&c.selling, "price", "", "Selling price per unit")
	f.StringVar(&c.supplier, "supplier", "", "Supplier name")
	f.StringVar(&c.expiry, "expiry", "", "Expiry date (YYYY-MM-DD)")
}

func (c *addStockCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := ledger.StockInput{ProductName: c.name, Quantity: c.quantity, Supplier: c.supplier}
	var err error
	if in.CostPrice, err = parseAmount("cost", c.cost); err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}
	if in.SellingPrice, err = parseAmount("price", c.selling); err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}
	if in.ExpiryDate, err = models.ParseDate(c.expiry); err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	item, err := a.engine.AddStock(ctx, in)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s now has %d units in stock.\n", item.ProductName, item.Quantity)
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a product from inventory" }
func (*deleteCmd) Usage() string {
	return `retailctl delete <product>

  Removes the product. Its sales stay in the ledger.
`
}
func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (*deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product name")
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := a.engine.DeleteProduct(ctx, f.Arg(0)); err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s deleted.\n", f.Arg(0))
	return subcommands.ExitSuccess
}

type stockCmd struct{}

func (*stockCmd) Name() string           { return "stock" }
func (*stockCmd) Synopsis() string       { return "list the inventory" }
func (*stockCmd) Usage() string          { return "retailctl stock\n" }
func (*stockCmd) SetFlags(*flag.FlagSet) {}

func (*stockCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	items, err := a.engine.ListStock(ctx)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	if len(items) == 0 {
		fmt.Println("Inventory is empty.")
		return subcommands.ExitSuccess
	}

	cur := a.cfg.Reporting.Currency
	var b strings.Builder
	b.WriteString("| Product | Quantity | Cost | Price | Supplier | Expiry |\n|---|---:|---:|---:|---|---|\n")
	for _, it := range items {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
			reporting.EscapeCell(it.ProductName), it.Quantity,
			reporting.FormatMoney(it.CostPrice, cur), reporting.FormatMoney(it.SellingPrice, cur),
			reporting.EscapeCell(it.Supplier), it.ExpiryDate)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ledger.ValidationErrors{{Field: field, Description: fmt.Sprintf("invalid amount %q", s)}}
	}
	return d, nil
}
