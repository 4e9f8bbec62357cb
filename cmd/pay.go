package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/murugan/khata"
)

type payCmd struct {
	customer string
	amount   string
	pocket   string
	note     string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment received from a customer" }
func (*payCmd) Usage() string {
	return `khata pay -c <customer> -amount <amount> [-pocket <pocket>] [-note <note>]

  Shrinks the customer's balance by the amount and adds the cash to the
  chosen pocket. Overpayment is allowed and leaves a negative balance.

Usage Examples:
$ khata pay -c Ravi -amount 200 -pocket bank
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer id or name (required).")
	f.StringVar(&c.amount, "amount", "", "Payment amount (required, positive).")
	f.StringVar(&c.pocket, "pocket", "kalla", "Pocket receiving the cash (kalla, home, bank, upi, other).")
	f.StringVar(&c.note, "note", "", "Optional note for the entry.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	pocket, err := khata.ParsePocket(c.pocket)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
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
	if err := book.RecordPayment(customer.ID, amount, pocket, c.note); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Received %s from %s into %s, balance is now %s\n", amount, customer.Name, pocket, customer.Balance)
	if customer.Balance.IsNegative() {
		fmt.Fprintf(os.Stderr, "Note: %s has overpaid by %s\n", customer.Name, customer.Balance.Neg())
	}
	return subcommands.ExitSuccess
}
