package ledgerbook

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// BankSet is the closed, ordered set of banks a ledger accepts.
// The order is the display order of the bank snapshot report.
type BankSet []string

// Contains reports whether bank belongs to the set.
func (s BankSet) Contains(bank string) bool { return slices.Contains(s, bank) }

// CategorySet is the closed set of categories a ledger accepts.
type CategorySet []string

// Contains reports whether category belongs to the set.
func (s CategorySet) Contains(category string) bool { return slices.Contains(s, category) }

// Config carries the fixed configuration of a ledger: its currency and the
// closed bank and category sets. It is supplied by the caller, never
// hard-coded, so different ledgers can vary them.
type Config struct {
	Currency   string
	Banks      BankSet
	Categories CategorySet
}

// Validate checks the configuration for emptiness.
func (c Config) Validate() error {
	if c.Currency == "" {
		return fmt.Errorf("ledger currency is missing")
	}
	if len(c.Banks) == 0 {
		return fmt.Errorf("ledger bank set is empty")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("ledger category set is empty")
	}
	return nil
}

// Ledger is the append-only record of transactions and loans forming the
// system of record.
//
// Transactions are always kept in chronological order. The ledger owns all
// mutations (add, delete, toggle); every derived view is recomputed from the
// current state by the pure functions in this package.
type Ledger struct {
	config       Config
	transactions []Transaction
	taken        []Loan
	given        []Loan
}

// NewLedger creates an empty ledger for the given configuration.
func NewLedger(config Config) (*Ledger, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Ledger{config: config}, nil
}

// RestoreLedger rebuilds a ledger from previously persisted parts. It is used
// by snapshot stores; records are assumed to have been validated when first
// appended, so only the configuration is checked.
func RestoreLedger(config Config, transactions []Transaction, taken, given []Loan) (*Ledger, error) {
	l, err := NewLedger(config)
	if err != nil {
		return nil, err
	}
	l.transactions = transactions
	l.taken = taken
	l.given = given
	l.stableSort()
	return l, nil
}

// Config returns the ledger's fixed configuration.
func (l *Ledger) Config() Config { return l.config }

// Currency returns the ledger's currency code.
func (l *Ledger) Currency() string { return l.config.Currency }

// Banks returns the closed, ordered bank set.
func (l *Ledger) Banks() BankSet { return l.config.Banks }

// Categories returns the closed category set.
func (l *Ledger) Categories() CategorySet { return l.config.Categories }

// AddTransaction validates a transaction, assigns it an id if it has none,
// and appends it, keeping the ledger chronological. It returns the appended
// record.
func (l *Ledger) AddTransaction(t Transaction) (Transaction, error) {
	if err := t.Validate(l.config.Banks, l.config.Categories); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}
	if t.Amount.Currency() != "" && t.Amount.Currency() != l.config.Currency {
		return Transaction{}, fmt.Errorf("transaction currency %s does not match ledger currency %s", t.Amount.Currency(), l.config.Currency)
	}
	t.Amount = M(t.Amount.Amount(), l.config.Currency)
	if t.ID == "" {
		t.ID = NewID()
	}
	l.transactions = append(l.transactions, t)
	l.stableSort()
	return t, nil
}

// DeleteTransaction removes the transaction with the given id.
func (l *Ledger) DeleteTransaction(id string) error {
	for i, t := range l.transactions {
		if t.ID == id {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("no transaction %q", id)
}

// Transaction returns the transaction with the given id.
func (l *Ledger) Transaction(id string) (Transaction, bool) {
	for _, t := range l.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Transactions returns an iterator over all transactions in chronological
// order. The yielded values are copies; iterating never exposes the ledger's
// internal state to mutation.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, t := range l.transactions {
			if !yield(t) {
				return
			}
		}
	}
}

// TransactionList returns a copy of all transactions in chronological order,
// the snapshot handed to the aggregation functions.
func (l *Ledger) TransactionList() []Transaction {
	return slices.Clone(l.transactions)
}

// AddLoan validates a loan, assigns it an id if it has none, and appends it
// to the given book. It returns the appended loan.
func (l *Ledger) AddLoan(book Book, loan Loan) (Loan, error) {
	if err := loan.Validate(); err != nil {
		return Loan{}, fmt.Errorf("invalid loan: %w", err)
	}
	if loan.InstallmentCount > 0 && len(loan.Schedule) != loan.InstallmentCount {
		return Loan{}, fmt.Errorf("loan schedule has %d installments, want %d", len(loan.Schedule), loan.InstallmentCount)
	}
	if loan.ID == "" {
		loan.ID = NewID()
	}
	switch book {
	case Taken:
		l.taken = append(l.taken, loan)
	case Given:
		l.given = append(l.given, loan)
	default:
		return Loan{}, fmt.Errorf("unknown loan book %d", book)
	}
	return loan, nil
}

// DeleteLoan removes the loan with the given id from the given book.
func (l *Ledger) DeleteLoan(book Book, id string) error {
	loans := l.book(book)
	for i, loan := range *loans {
		if loan.ID == id {
			*loans = slices.Delete(*loans, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("no loan %q in book %s", id, book)
}

// Loan returns the loan with the given id from the given book.
func (l *Ledger) Loan(book Book, id string) (Loan, bool) {
	for _, loan := range *l.book(book) {
		if loan.ID == id {
			return loan, true
		}
	}
	return Loan{}, false
}

// Loans returns a copy of the loans in the given book, in insertion order.
func (l *Ledger) Loans(book Book) []Loan {
	return slices.Clone(*l.book(book))
}

// ToggleInstallment flips the paid state of one installment of one loan,
// stamping the paid date with on. No other installment is affected.
func (l *Ledger) ToggleInstallment(book Book, loanID, installmentID string, on Date) (Installment, error) {
	loans := *l.book(book)
	for i := range loans {
		if loans[i].ID == loanID {
			return loans[i].Toggle(installmentID, on)
		}
	}
	return Installment{}, fmt.Errorf("no loan %q in book %s", loanID, book)
}

func (l *Ledger) book(b Book) *[]Loan {
	if b == Given {
		return &l.given
	}
	return &l.taken
}

// stableSort sorts the ledger by transaction date. The sort is stable, so
// transactions on the same day keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}
