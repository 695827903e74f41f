package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avandelay/ledgerbook/renderer"
	"github.com/google/subcommands"
)

type banksCmd struct{}

func (*banksCmd) Name() string     { return "banks" }
func (*banksCmd) Synopsis() string { return "display the current balance of every bank" }
func (*banksCmd) Usage() string {
	return `lbk banks

  Displays the net balance of every configured bank, in the configured order,
  followed by the total over the whole ledger.
`
}

func (*banksCmd) SetFlags(*flag.FlagSet) {}

func (*banksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BanksMarkdown(ledger.BankSnapshot(), ledger.Summary().Net))
	return subcommands.ExitSuccess
}
