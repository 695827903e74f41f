package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avandelay/ledgerbook/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	bank string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the running balance of one bank" }
func (*historyCmd) Usage() string {
	return `lbk history -b <bank>

  Displays every transaction of one bank with the balance after each,
  most recent first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bank, "b", "", "Bank to display the history of.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !ledger.Banks().Contains(c.bank) {
		fmt.Fprintf(os.Stderr, "Error: unknown bank %q, want one of %v\n", c.bank, ledger.Banks())
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.HistoryMarkdown(c.bank, ledger.History(c.bank)))
	return subcommands.ExitSuccess
}
