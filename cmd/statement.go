package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/murugan/khata/renderer"
)

type statementCmd struct {
	customer string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "show a customer's transaction history" }
func (*statementCmd) Usage() string {
	return `khata statement [-c <customer>]

  Shows one customer's entries in date order. Without -c, lists all
  customers with their balances.

Usage Examples:
$ khata statement -c Ravi
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer id or name.")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	book := store.Book()

	if c.customer == "" {
		printMarkdown(renderer.Customers(book))
		return subcommands.ExitSuccess
	}

	customer, err := book.FindCustomer(c.customer)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	st, err := book.BuildStatement(customer.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Statement(st))
	return subcommands.ExitSuccess
}
