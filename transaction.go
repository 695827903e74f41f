package ledgerbook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies a transaction as money coming in or going out.
//
// The amount itself is always non-negative; the sign of its contribution to
// any balance is derived from the kind, never stored.
type Kind int

const (
	Income Kind = iota
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}

func (k Kind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Transaction is a single immutable income or expense record.
//
// Identity is the ID; records are deleted by id and never mutated in place.
type Transaction struct {
	ID          string
	Date        Date
	Kind        Kind
	Description string
	Amount      Money // non-negative
	Bank        string
	Category    string
}

// NewTransaction creates a transaction record. The id is assigned by the
// ledger when the record is appended.
func NewTransaction(day Date, kind Kind, description string, amount Money, bank, category string) Transaction {
	return Transaction{
		Date:        day,
		Kind:        kind,
		Description: description,
		Amount:      amount,
		Bank:        bank,
		Category:    category,
	}
}

// Signed returns the transaction's contribution to a balance: +amount for
// income, -amount for expense.
func (t Transaction) Signed() Money {
	if t.Kind == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate checks the transaction against the ledger's closed bank and
// category sets. It fails fast with a descriptive error; amounts are never
// silently coerced.
func (t Transaction) Validate(banks BankSet, categories CategorySet) error {
	if t.Date.IsZero() {
		return errors.New("transaction date is missing")
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction amount must not be negative, got %s", t.Amount)
	}
	if !banks.Contains(t.Bank) {
		return fmt.Errorf("unknown bank %q, want one of %v", t.Bank, banks)
	}
	if !categories.Contains(t.Category) {
		return fmt.Errorf("unknown category %q, want one of %v", t.Category, categories)
	}
	return nil
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Kind == o.Kind &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Bank == o.Bank &&
		t.Category == o.Category
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordTransaction)
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("kind", t.Kind)
	w.Optional("description", t.Description)
	w.EmbedFrom(t.Amount)
	w.Append("bank", t.Bank)
	w.Append("category", t.Category)
	return w.MarshalJSON()
}
