package sqlstore

import (
	"path/filepath"
	"testing"

	"github.com/avandelay/ledgerbook"
)

var testConfig = ledgerbook.Config{
	Currency:   "EUR",
	Banks:      ledgerbook.BankSet{"checking", "cash"},
	Categories: ledgerbook.CategorySet{"salary", "groceries", "other"},
}

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "ledger.db"), testConfig)
}

func TestStore_LoadMissing(t *testing.T) {
	s := testStore(t)
	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if l.Currency() != "EUR" {
		t.Errorf("Currency() = %q, want EUR", l.Currency())
	}
	if got := l.TransactionList(); len(got) != 0 {
		t.Errorf("fresh ledger has %d transactions", len(got))
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := testStore(t)
	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tr, err := l.AddTransaction(ledgerbook.NewTransaction(
		ledgerbook.MustParseDate("2024-01-15"), ledgerbook.Income, "salary january",
		ledgerbook.M(2000.50, "EUR"), "checking", "salary"))
	if err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	loan, err := ledgerbook.NewLoan("Ada", ledgerbook.M(1000, "EUR"),
		ledgerbook.MustParseDate("2024-01-10"), ledgerbook.MustParseDate("2024-04-10"), 3, "laptop")
	if err != nil {
		t.Fatalf("NewLoan() error = %v", err)
	}
	loan, err = l.AddLoan(ledgerbook.Given, loan)
	if err != nil {
		t.Fatalf("AddLoan() error = %v", err)
	}
	if _, err := l.ToggleInstallment(ledgerbook.Given, loan.ID, loan.Schedule[0].ID, ledgerbook.MustParseDate("2024-02-11")); err != nil {
		t.Fatalf("ToggleInstallment() error = %v", err)
	}

	if err := s.Save(l); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	back, err := s.Load()
	if err != nil {
		t.Fatalf("Load() after save error = %v", err)
	}
	got, ok := back.Transaction(tr.ID)
	if !ok {
		t.Fatalf("transaction %q lost in round trip", tr.ID)
	}
	if !got.Equal(tr) {
		t.Errorf("transaction = %+v, want %+v", got, tr)
	}

	loans := back.Loans(ledgerbook.Given)
	if len(loans) != 1 {
		t.Fatalf("loaded %d given loans, want 1", len(loans))
	}
	gotLoan := loans[0]
	if gotLoan.ID != loan.ID || gotLoan.Counterparty != "Ada" || gotLoan.Notes != "laptop" {
		t.Errorf("loan = %+v, want %+v", gotLoan, loan)
	}
	if !gotLoan.Principal.Equal(loan.Principal) {
		t.Errorf("principal = %s, want %s", gotLoan.Principal, loan.Principal)
	}
	if gotLoan.DueDate.String() != "2024-04-10" {
		t.Errorf("dueDate = %s, want 2024-04-10", gotLoan.DueDate)
	}
	if len(gotLoan.Schedule) != 3 {
		t.Fatalf("loaded %d installments, want 3", len(gotLoan.Schedule))
	}
	first := gotLoan.Schedule[0]
	if !first.Paid || first.PaidDate.String() != "2024-02-11" {
		t.Errorf("paid state lost: %+v", first)
	}
	if gotLoan.Schedule[1].Paid || !gotLoan.Schedule[1].PaidDate.IsZero() {
		t.Errorf("unpaid installment gained state: %+v", gotLoan.Schedule[1])
	}
	// Exact amounts survive the text round trip.
	if !gotLoan.Schedule[2].Amount.Equal(loan.Schedule[2].Amount) {
		t.Errorf("installment amount = %s, want %s", gotLoan.Schedule[2].Amount, loan.Schedule[2].Amount)
	}
}

func TestStore_SaveIsSnapshot(t *testing.T) {
	s := testStore(t)
	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	tr, err := l.AddTransaction(ledgerbook.NewTransaction(
		ledgerbook.MustParseDate("2024-01-15"), ledgerbook.Expense, "groceries",
		ledgerbook.M(40, "EUR"), "cash", "groceries"))
	if err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	if err := s.Save(l); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Deleting and saving again must not resurrect the old row.
	if err := l.DeleteTransaction(tr.ID); err != nil {
		t.Fatalf("DeleteTransaction() error = %v", err)
	}
	if err := s.Save(l); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	back, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := back.TransactionList(); len(got) != 0 {
		t.Errorf("loaded %d transactions after delete, want 0", len(got))
	}
}

func TestStore_PreservesSameDayOrder(t *testing.T) {
	s := testStore(t)
	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	descriptions := []string{"first", "second", "third"}
	for _, d := range descriptions {
		if _, err := l.AddTransaction(ledgerbook.NewTransaction(
			ledgerbook.MustParseDate("2024-01-15"), ledgerbook.Income, d,
			ledgerbook.M(1, "EUR"), "cash", "other")); err != nil {
			t.Fatalf("AddTransaction(%s) error = %v", d, err)
		}
	}
	if err := s.Save(l); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	back, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for i, tr := range back.TransactionList() {
		if tr.Description != descriptions[i] {
			t.Errorf("transaction %d = %q, want %q", i, tr.Description, descriptions[i])
		}
	}
}
