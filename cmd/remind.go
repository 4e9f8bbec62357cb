package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type remindCmd struct {
	customer    string
	countryCode string
}

func (*remindCmd) Name() string     { return "remind" }
func (*remindCmd) Synopsis() string { return "build a WhatsApp reminder link for a customer" }
func (*remindCmd) Usage() string {
	return `khata remind -c <customer> [-cc <country-code>]

  Prints the reminder message and a wa.me link prefilled with it. The
  customer must have a 10-digit mobile number on file.

Usage Examples:
$ khata remind -c Ravi
`
}

func (c *remindCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "c", "", "Customer id or name (required).")
	f.StringVar(&c.countryCode, "cc", cfg.CountryCode, "Country code to prepend to the mobile number.")
}

func (c *remindCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	link, err := book.ReminderLink(customer, c.countryCode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(book.ReminderMessage(customer))
	fmt.Println(link)
	return subcommands.ExitSuccess
}
