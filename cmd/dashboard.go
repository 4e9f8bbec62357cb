package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/murugan/khata/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the book's headline figures" }
func (*dashboardCmd) Usage() string {
	return `khata dashboard

  Shows total outstanding credit, today's dealer purchases, all-time
  expenses, the cash pockets and the recent activity log.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	book := store.Book()

	printMarkdown(renderer.Dashboard(book.ComputeTotals(), book.Cash(), book.Recent(20)))
	return subcommands.ExitSuccess
}
