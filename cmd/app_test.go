package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/avandelay/ledgerbook"
	"github.com/google/subcommands"
)

// useTempLedger points the global store flags at a fresh file-store ledger.
func useTempLedger(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_ledger.jsonl")

	oldFile, oldStore := ledgerFile, storeKind
	file, kind := path, "file"
	ledgerFile, storeKind = &file, &kind
	t.Cleanup(func() { ledgerFile, storeKind = oldFile, oldStore })
	return path
}

func TestSplitList(t *testing.T) {
	got := splitList(" checking, savings ,,cash ")
	if !slices.Equal(got, []string{"checking", "savings", "cash"}) {
		t.Errorf("splitList() = %v", got)
	}
	if got := splitList(""); len(got) != 0 {
		t.Errorf("splitList(\"\") = %v, want empty", got)
	}
}

func TestOpenStore_Unknown(t *testing.T) {
	kind := "redis"
	oldStore := storeKind
	storeKind = &kind
	defer func() { storeKind = oldStore }()

	if _, err := openStore(); err == nil {
		t.Error("openStore() with unknown backend, want error")
	}
}

func TestAddCmd_RecordsTransaction(t *testing.T) {
	path := useTempLedger(t)

	cmd := &addCmd{kind: ledgerbook.Income}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-b", "cash", "-c", "other", "-d", "2024-01-15", "-m", "found money", "100.50"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading ledger file: %v", err)
	}
	for _, want := range []string{`"record":"config"`, `"kind":"income"`, `"date":"2024-01-15"`, "100.5", "found money"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("ledger file missing %q:\n%s", want, content)
		}
	}
}

func TestAddCmd_RejectsUnknownBank(t *testing.T) {
	useTempLedger(t)

	cmd := &addCmd{kind: ledgerbook.Expense}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-b", "monopoly", "-c", "other", "40"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status == subcommands.ExitSuccess {
		t.Error("Execute() with unknown bank, want failure")
	}
}

func TestLoanRoundTripThroughCommands(t *testing.T) {
	useTempLedger(t)

	borrow := &loanCmd{book: ledgerbook.Taken}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	borrow.SetFlags(f)
	if err := f.Parse([]string{"-w", "Ada", "-s", "2024-01-10", "-n", "3", "900"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if status := borrow.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("borrow Execute() = %v, want ExitSuccess", status)
	}

	ledger, err := loadLedger()
	if err != nil {
		t.Fatalf("loadLedger() error = %v", err)
	}
	loans := ledger.Loans(ledgerbook.Taken)
	if len(loans) != 1 {
		t.Fatalf("recorded %d loans, want 1", len(loans))
	}
	loan := loans[0]
	if len(loan.Schedule) != 3 {
		t.Fatalf("schedule has %d installments, want 3", len(loan.Schedule))
	}

	pay := &payCmd{}
	f = flag.NewFlagSet("test", flag.ContinueOnError)
	pay.SetFlags(f)
	if err := f.Parse([]string{"-book", "taken", "-loan", loan.ID, "-d", "2024-02-11", loan.Schedule[0].ID}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if status := pay.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("pay Execute() = %v, want ExitSuccess", status)
	}

	ledger, err = loadLedger()
	if err != nil {
		t.Fatalf("loadLedger() error = %v", err)
	}
	loan, ok := ledger.Loan(ledgerbook.Taken, loan.ID)
	if !ok {
		t.Fatal("loan lost after pay")
	}
	if !loan.Schedule[0].Paid || loan.Schedule[0].PaidDate.String() != "2024-02-11" {
		t.Errorf("installment not marked paid: %+v", loan.Schedule[0])
	}
}
