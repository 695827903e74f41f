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

// loanCmd records a new loan. Registered twice: "borrow" appends to the taken
// book, "lend" to the given book.
type loanCmd struct {
	book         ledgerbook.Book
	counterparty string
	start        string
	due          string
	installments int
	notes        string
}

func (c *loanCmd) Name() string {
	if c.book == ledgerbook.Taken {
		return "borrow"
	}
	return "lend"
}

func (c *loanCmd) Synopsis() string {
	if c.book == ledgerbook.Taken {
		return "record money borrowed from a counterparty"
	}
	return "record money lent to a counterparty"
}

func (c *loanCmd) Usage() string {
	return fmt.Sprintf(`lbk %s <amount> -w <counterparty> [-s <start>] [-due <date>] [-n <count>] [-m <notes>]

  Records a loan of the given principal. With -n, an amortized schedule of
  monthly installments is generated; the installment amounts always sum back
  to the principal exactly.
`, c.Name())
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.counterparty, "w", "", "Counterparty of the loan.")
	f.StringVar(&c.start, "s", "0d", "Start date of the loan (defaults to today).")
	f.StringVar(&c.due, "due", "", "Optional final due date.")
	f.IntVar(&c.installments, "n", 0, "Number of monthly installments (0 for no schedule).")
	f.StringVar(&c.notes, "m", "", "Free-form notes.")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one amount argument\n")
		return subcommands.ExitUsageError
	}
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	principal, err := ledgerbook.ParseMoney(f.Arg(0), ledger.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	start, err := ledgerbook.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var due ledgerbook.Date
	if c.due != "" {
		if due, err = ledgerbook.ParseDate(c.due); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	loan, err := ledgerbook.NewLoan(c.counterparty, principal, start, due, c.installments, c.notes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	loan, err = ledger.AddLoan(c.book, loan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ScheduleMarkdown(loan))
	return subcommands.ExitSuccess
}

// loansCmd lists a loan book, or one loan's schedule with -id.
type loansCmd struct {
	book string
	id   string
}

func (*loansCmd) Name() string     { return "loans" }
func (*loansCmd) Synopsis() string { return "list loans with their repayment progress" }
func (*loansCmd) Usage() string {
	return `lbk loans [-book taken|given] [-id <loan_id>]

  Lists the loans of one book with principal, repaid and outstanding amounts.
  With -id, shows the full installment schedule of a single loan.
`
}

func (c *loansCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.book, "book", "taken", "Loan book to list (taken or given).")
	f.StringVar(&c.id, "id", "", "Show the schedule of this loan only.")
}

func (c *loansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := ledgerbook.ParseBook(c.book)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.id != "" {
		loan, ok := ledger.Loan(book, c.id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no loan %q in book %s\n", c.id, book)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.ScheduleMarkdown(loan))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.LoansMarkdown(book, ledger.Loans(book)))
	return subcommands.ExitSuccess
}

// payCmd toggles the paid state of one installment.
type payCmd struct {
	book string
	loan string
	date string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "toggle the paid state of a loan installment" }
func (*payCmd) Usage() string {
	return `lbk pay <installment_id> -loan <loan_id> [-book taken|given] [-d <date>]

  Marks an installment as paid on the given date, or back as unpaid when it
  was already paid. Other installments are never affected.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.book, "book", "taken", "Loan book the loan belongs to (taken or given).")
	f.StringVar(&c.loan, "loan", "", "Id of the loan the installment belongs to.")
	f.StringVar(&c.date, "d", "0d", "Payment date (defaults to today).")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one installment id argument\n")
		return subcommands.ExitUsageError
	}
	book, err := ledgerbook.ParseBook(c.book)
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
	inst, err := ledger.ToggleInstallment(book, c.loan, f.Arg(0), date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if inst.Paid {
		fmt.Printf("Installment %s of %s marked paid on %s\n", inst.ID, inst.Amount, inst.PaidDate)
	} else {
		fmt.Printf("Installment %s of %s marked unpaid\n", inst.ID, inst.Amount)
	}
	return subcommands.ExitSuccess
}
