package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avandelay/ledgerbook/renderer"
	"github.com/google/subcommands"
)

type yearlyCmd struct{}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display income, expense and saving per year" }
func (*yearlyCmd) Usage() string {
	return `lbk yearly

  Displays one row per year carrying at least one transaction, with the
  year's income, expense and saving.
`
}

func (*yearlyCmd) SetFlags(*flag.FlagSet) {}

func (*yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.YearlyMarkdown(ledger.YearlyReport()))
	return subcommands.ExitSuccess
}
