package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/murugan/khata"
	"github.com/murugan/khata/renderer"
)

type purchaseCmd struct {
	dealer string
	amount string
	pocket string
	date   string
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "record stock bought from a dealer" }
func (*purchaseCmd) Usage() string {
	return `khata purchase -dealer <name> -amount <amount> [-pocket <pocket>] [-date <date>]

  Records a dealer purchase and deducts the amount from the pocket it was
  paid out of. The pocket may go negative.

Usage Examples:
$ khata purchase -dealer "Sharma Traders" -amount 2500 -pocket kalla
`
}

func (c *purchaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dealer, "dealer", "", "Dealer name (required).")
	f.StringVar(&c.amount, "amount", "", "Purchase amount (required, positive).")
	f.StringVar(&c.pocket, "pocket", "kalla", "Pocket the purchase was paid from.")
	f.StringVar(&c.date, "date", "", "Purchase date (YYYY-MM-DD), defaults to today.")
}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	book := store.Book()

	purchase, err := book.RecordPurchase(c.dealer, amount, pocket, on)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Recorded purchase %s from %s, paid %s from %s\n", purchase.ID, purchase.Dealer, purchase.Amount, purchase.Pocket)
	warnIfNegative(book, pocket)
	return subcommands.ExitSuccess
}

type rmPurchaseCmd struct {
	id string
}

func (*rmPurchaseCmd) Name() string     { return "rm-purchase" }
func (*rmPurchaseCmd) Synopsis() string { return "delete a purchase record" }
func (*rmPurchaseCmd) Usage() string {
	return `khata rm-purchase -id <purchase-id>

  Removes the record only. The pocket deduction made when the purchase was
  recorded is not reversed. Without -id, lists the purchases so the id can
  be found.
`
}

func (c *rmPurchaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Purchase id (required).")
}

func (c *rmPurchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.id == "" {
		printMarkdown(renderer.Purchases(store.Book()))
		return subcommands.ExitSuccess
	}
	if err := store.Book().DeletePurchase(c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Deleted purchase %s. Pocket balances were not changed.\n", c.id)
	return subcommands.ExitSuccess
}
