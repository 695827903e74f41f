package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avandelay/ledgerbook"
	"github.com/avandelay/ledgerbook/renderer"
	"github.com/google/subcommands"
)

// addCmd records an income or an expense. The same command implementation is
// registered twice, once per kind.
type addCmd struct {
	kind        ledgerbook.Kind
	date        string
	bank        string
	category    string
	description string
}

func (c *addCmd) Name() string { return c.kind.String() }
func (c *addCmd) Synopsis() string {
	switch c.kind {
	case ledgerbook.Income:
		return "record money received on a bank"
	default:
		return "record money spent from a bank"
	}
}
func (c *addCmd) Usage() string {
	return fmt.Sprintf(`lbk %s <amount> -b <bank> -c <category> [-m <description>] [-d <date>]

  Appends a %s transaction to the ledger. The amount is a plain decimal in
  the ledger currency; bank and category must belong to the configured sets.
`, c.kind, c.kind)
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the transaction (defaults to today).")
	f.StringVar(&c.bank, "b", "", "Bank the money moves through.")
	f.StringVar(&c.category, "c", "", "Category of the transaction.")
	f.StringVar(&c.description, "m", "", "Free-form description.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one amount argument\n")
		return subcommands.ExitUsageError
	}
	amount, err := ledgerbook.ParseMoney(f.Arg(0), "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	date, err := ledgerbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, err := ledger.AddTransaction(ledgerbook.NewTransaction(date, c.kind, c.description, amount, c.bank, c.category))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s (id %s)\n", renderer.Transaction(t), t.ID)
	return subcommands.ExitSuccess
}

// deleteCmd removes a transaction, or a loan when -book is given.
type deleteCmd struct {
	book string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction or a loan by id" }
func (*deleteCmd) Usage() string {
	return `lbk delete <id> [-book taken|given]

  Deletes the transaction with the given id. With -book, deletes the loan
  with that id from the named loan book instead.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.book, "book", "", "Delete a loan from this book (taken or given) instead of a transaction.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one id argument\n")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.book != "" {
		book, err := ledgerbook.ParseBook(c.book)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := ledger.DeleteLoan(book, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else if err := ledger.DeleteTransaction(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s\n", id)
	return subcommands.ExitSuccess
}
