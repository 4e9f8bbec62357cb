package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/murugan/khata/renderer"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "reconcile stored balances against entry history" }
func (*checkCmd) Usage() string {
	return `khata check

  Recomputes every customer's balance from their entries and reports the
  ones whose stored balance disagrees. Nothing is changed.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	drifts := store.Book().CheckBalances()
	if len(drifts) == 0 {
		fmt.Println("✅ All stored balances match their entries.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Drifts(drifts))
	return subcommands.ExitFailure
}
