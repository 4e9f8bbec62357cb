package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/murugan/khata"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a backup of the whole book" }
func (*exportCmd) Usage() string {
	return `khata export [-o <file>]

  Writes the whole book as one JSON document. Without -o, the backup goes
  to khata_backup_<date>.json in the current directory. Use "-o -" to
  write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Backup file to write, or - for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.output == "-" {
		if err := store.Export(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = khata.BackupName(khata.Today())
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backup file %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := store.Export(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported book to %s\n", name)
	return subcommands.ExitSuccess
}

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the book with a backup document" }
func (*importCmd) Usage() string {
	return `khata import -i <file>

  Replaces the whole book with the given backup. The document must carry a
  customers sequence and a cash object, or the import is rejected and the
  current book is left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Backup file to import (required).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup file %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.Import(in); err != nil {
		fmt.Fprintf(os.Stderr, "Import rejected: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %s into %s\n", c.input, store.Path())
	return subcommands.ExitSuccess
}
