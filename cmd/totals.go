package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avandelay/ledgerbook/renderer"
	"github.com/google/subcommands"
)

type totalsCmd struct{}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "display the grand totals over the whole ledger" }
func (*totalsCmd) Usage() string {
	return `lbk totals

  Displays total income, total expense and net over all transactions.
`
}

func (*totalsCmd) SetFlags(*flag.FlagSet) {}

func (*totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TotalsMarkdown(ledger.Summary()))
	return subcommands.ExitSuccess
}
