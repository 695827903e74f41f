package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avandelay/ledgerbook/renderer"
	"github.com/google/subcommands"
)

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display income, expense and saving per month" }
func (*monthlyCmd) Usage() string {
	return `lbk monthly

  Displays one row per month carrying at least one transaction, with the
  month's income, expense and saving. Months without transactions are omitted.
`
}

func (*monthlyCmd) SetFlags(*flag.FlagSet) {}

func (*monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MonthlyMarkdown(ledger.MonthlyReport()))
	return subcommands.ExitSuccess
}
