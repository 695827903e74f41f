// Command lbk is a personal ledger of transactions and loans.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/avandelay/ledgerbook/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Optional .env file with LEDGERBOOK_* defaults; a missing file is fine.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the command tree. It returns
// immediately unless the binary is invoked by the shell completion hook.
func completion() {
	books := predict.Set{"taken", "given"}
	dateFlags := map[string]complete.Predictor{"d": predict.Nothing}

	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"income":  {Flags: dateFlags},
			"expense": {Flags: dateFlags},
			"delete":  {Flags: map[string]complete.Predictor{"book": books}},
			"borrow":  {Flags: dateFlags},
			"lend":    {Flags: dateFlags},
			"loans":   {Flags: map[string]complete.Predictor{"book": books}},
			"pay":     {Flags: map[string]complete.Predictor{"book": books}},
			"monthly": {},
			"yearly":  {},
			"banks":   {},
			"history": {},
			"totals":  {},
			"fmt":     {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"db-file":     predict.Files("*.db"),
			"store":       predict.Set{"file", "sqlite"},
		},
	}
	c.Complete("lbk")
}
