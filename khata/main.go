package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/murugan/khata/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, a no-op unless invoked by the shell.
	completion().Complete("khata")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	pockets := predict.Set{"kalla", "home", "bank", "upi", "other"}
	sub := map[string]*complete.Command{
		"add-customer": {Flags: map[string]complete.Predictor{"name": predict.Nothing, "mobile": predict.Nothing, "opening": predict.Nothing}},
		"credit":       {Flags: map[string]complete.Predictor{"c": predict.Nothing, "amount": predict.Nothing, "note": predict.Nothing}},
		"pay":          {Flags: map[string]complete.Predictor{"c": predict.Nothing, "amount": predict.Nothing, "pocket": pockets, "note": predict.Nothing}},
		"purchase":     {Flags: map[string]complete.Predictor{"dealer": predict.Nothing, "amount": predict.Nothing, "pocket": pockets, "date": predict.Nothing}},
		"rm-purchase":  {Flags: map[string]complete.Predictor{"id": predict.Nothing}},
		"expense":      {Flags: map[string]complete.Predictor{"title": predict.Nothing, "amount": predict.Nothing, "pocket": pockets, "date": predict.Nothing}},
		"rm-expense":   {Flags: map[string]complete.Predictor{"id": predict.Nothing}},
		"cash":         {Flags: map[string]complete.Predictor{"pocket": pockets, "amount": predict.Nothing, "action": predict.Set{"add", "subtract"}}},
		"dashboard":    {},
		"statement":    {Flags: map[string]complete.Predictor{"c": predict.Nothing}},
		"recent":       {},
		"pockets":      {},
		"export":       {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
		"import":       {Flags: map[string]complete.Predictor{"i": predict.Files("*.json")}},
		"template":     {Flags: map[string]complete.Predictor{"set": predict.Nothing}},
		"remind":       {Flags: map[string]complete.Predictor{"c": predict.Nothing, "cc": predict.Nothing}},
		"get":          {},
		"check":        {},
		"clear":        {Flags: map[string]complete.Predictor{"yes": predict.Nothing}},
		"topic":        {Args: predict.Set{"readme", "getting-started", "pockets", "backup", "reminders"}},
		"assist":       {},
	}
	return &complete.Command{
		Sub:   sub,
		Flags: map[string]complete.Predictor{"file": predict.Files("*.json")},
	}
}
