package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/murugan/khata/renderer"
)

type recentCmd struct{}

func (*recentCmd) Name() string     { return "recent" }
func (*recentCmd) Synopsis() string { return "show the recent activity log" }
func (*recentCmd) Usage() string {
	return `khata recent

  Shows the most recent activity, newest first.
`
}

func (c *recentCmd) SetFlags(f *flag.FlagSet) {}

func (c *recentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Recent(store.Book().Recent(0)))
	return subcommands.ExitSuccess
}
