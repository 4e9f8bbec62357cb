package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/murugan/khata/renderer"
)

type pocketsCmd struct{}

func (*pocketsCmd) Name() string     { return "pockets" }
func (*pocketsCmd) Synopsis() string { return "show the cash pocket balances" }
func (*pocketsCmd) Usage() string {
	return `khata pockets

  Shows the balance of each cash pocket and their total.
`
}

func (c *pocketsCmd) SetFlags(f *flag.FlagSet) {}

func (c *pocketsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Pockets(store.Book().Cash()))
	return subcommands.ExitSuccess
}
