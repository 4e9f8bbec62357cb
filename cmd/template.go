package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type templateCmd struct {
	set string
}

func (*templateCmd) Name() string     { return "template" }
func (*templateCmd) Synopsis() string { return "show or set the reminder message template" }
func (*templateCmd) Usage() string {
	return `khata template [-set <template>]

  Shows the stored reminder template, or replaces it. The template may use
  {name} and {balance} placeholders.

Usage Examples:
$ khata template -set "Dear {name}, your outstanding is ₹{balance}."
`
}

func (c *templateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "New template to store.")
}

func (c *templateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	book := store.Book()

	if c.set == "" {
		fmt.Println(book.Template())
		return subcommands.ExitSuccess
	}

	book.SetTemplate(c.set)
	if status := saveStore(store); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println("Template updated.")
	return subcommands.ExitSuccess
}
