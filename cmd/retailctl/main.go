// Command retailctl manages the retail ledger from the terminal against the
// same Postgres store the API uses.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&initCmd{}, "setup")

	commander.Register(&addStockCmd{}, "stock")
	commander.Register(&deleteCmd{}, "stock")
	commander.Register(&stockCmd{}, "stock")

	commander.Register(&sellCmd{}, "sales")
	commander.Register(&salesCmd{}, "sales")
	commander.Register(&ledgerCmd{}, "sales")

	commander.Register(&expenseCmd{}, "expenses")
	commander.Register(&expensesCmd{}, "expenses")

	commander.Register(&reportCmd{}, "reports")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
