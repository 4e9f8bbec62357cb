package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/murugan/khata"
)

type cashCmd struct {
	pocket string
	amount string
	action string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "manually adjust a cash pocket" }
func (*cashCmd) Usage() string {
	return `khata cash -pocket <pocket> -amount <amount> -action <add|subtract>

  Adds to or subtracts from one pocket. Use it to correct the book when
  cash moved outside the recorded operations.

Usage Examples:
$ khata cash -pocket kalla -amount 500 -action add
$ khata cash -pocket bank -amount 120 -action subtract
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pocket, "pocket", "", "Pocket to adjust (kalla, home, bank, upi, other).")
	f.StringVar(&c.amount, "amount", "", "Adjustment amount (required, positive).")
	f.StringVar(&c.action, "action", "add", "Whether to add or subtract the amount.")
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pocket, err := khata.ParsePocket(c.pocket)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	dir, err := khata.ParseDirection(c.action)
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

	if err := book.AdjustPocket(pocket, amount, dir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}

	cash := book.Cash()
	fmt.Printf("Pocket %s is now %s\n", pocket, cash.Balance(pocket))
	warnIfNegative(book, pocket)
	return subcommands.ExitSuccess
}
