package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type creditCmd struct {
	customer string
	amount   string
	note     string
}

func (*creditCmd) Name() string     { return "credit" }
func (*creditCmd) Synopsis() string { return "extend new credit to a customer" }
func (*creditCmd) Usage() string {
	return `khata credit -c <customer> -amount <amount> [-note <note>]

  Grows the customer's balance by the amount and records a credit entry
  dated today.

Usage Examples:
$ khata credit -c Ravi -amount 500 -note "2 sacks of rice"
`
}

func (c *creditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer id or name (required).")
	f.StringVar(&c.amount, "amount", "", "Credit amount (required, positive).")
	f.StringVar(&c.note, "note", "", "Optional note for the entry.")
}

func (c *creditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	book := store.Book()

	customer, err := book.FindCustomer(c.customer)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.RecordCredit(customer.ID, amount, c.note); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Credited %s to %s, balance is now %s\n", amount, customer.Name, customer.Balance)
	return subcommands.ExitSuccess
}
