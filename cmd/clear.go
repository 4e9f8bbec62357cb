package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "erase the whole book" }
func (*clearCmd) Usage() string {
	return `khata clear -yes

  Resets the book to an empty state. There is no undo, so take an export
  first. Refuses to run without -yes.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm erasing everything.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Refusing to erase the book without -yes. Consider 'khata export' first.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	store.Book().Reset()
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Cleared %s\n", store.Path())
	return subcommands.ExitSuccess
}
