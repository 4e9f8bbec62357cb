package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/murugan/khata/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `khata topic [<topic>...]

  Show documentation for the given topics. Without arguments, shows the
  readme with the list of topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		all, lerr := docs.AllTopics()
		if lerr == nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\nAvailable topics: %s\n", err, strings.Join(all, ", "))
		} else {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
