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

type expenseCmd struct {
	title  string
	amount string
	pocket string
	date   string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record a business expense" }
func (*expenseCmd) Usage() string {
	return `khata expense -title <title> -amount <amount> [-pocket <pocket>] [-date <date>]

  Records an expense and deducts the amount from the pocket it was paid
  out of. The pocket may go negative.

Usage Examples:
$ khata expense -title "Electricity bill" -amount 1200 -pocket bank
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "What the expense was for (required).")
	f.StringVar(&c.amount, "amount", "", "Expense amount (required, positive).")
	f.StringVar(&c.pocket, "pocket", "kalla", "Pocket the expense was paid from.")
	f.StringVar(&c.date, "date", "", "Expense date (YYYY-MM-DD), defaults to today.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	expense, err := book.RecordExpense(c.title, amount, pocket, on)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Recorded expense %s (%s), paid %s from %s\n", expense.ID, expense.Title, expense.Amount, expense.Pocket)
	warnIfNegative(book, pocket)
	return subcommands.ExitSuccess
}

type rmExpenseCmd struct {
	id string
}

func (*rmExpenseCmd) Name() string     { return "rm-expense" }
func (*rmExpenseCmd) Synopsis() string { return "delete an expense record" }
func (*rmExpenseCmd) Usage() string {
	return `khata rm-expense -id <expense-id>

  Removes the record only. The pocket deduction made when the expense was
  recorded is not reversed. Without -id, lists the expenses so the id can
  be found.
`
}

func (c *rmExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Expense id (required).")
}

func (c *rmExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.id == "" {
		printMarkdown(renderer.Expenses(store.Book()))
		return subcommands.ExitSuccess
	}
	if err := store.Book().DeleteExpense(c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Deleted expense %s. Pocket balances were not changed.\n", c.id)
	return subcommands.ExitSuccess
}
