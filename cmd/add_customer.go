package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/murugan/khata"
)

type addCustomerCmd struct {
	name    string
	mobile  string
	opening string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "register a new customer in the book" }
func (*addCustomerCmd) Usage() string {
	return `khata add-customer -name <name> [-mobile <number>] [-opening <amount>]

  Registers a customer. An opening balance, when given, is recorded as the
  customer's first entry.

Usage Examples:
$ khata add-customer -name "Ravi" -mobile "9876543210" -opening 1000
`
}

func (c *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name (required).")
	f.StringVar(&c.mobile, "mobile", "", "Mobile number, used for WhatsApp reminders.")
	f.StringVar(&c.opening, "opening", "", "Opening balance owed by the customer.")
}

func (c *addCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var opening khata.Money
	if c.opening != "" {
		var err error
		opening, err = khata.ParseMoney(c.opening)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing opening balance: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	customer, err := store.Book().RegisterCustomer(c.name, c.mobile, opening)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Added customer %s (id %s) with balance %s\n", customer.Name, customer.ID, customer.Balance)
	return subcommands.ExitSuccess
}
