package ledgerbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Record tags identifying the line types of the JSONL ledger format.
const (
	recordConfig      = "config"
	recordTransaction = "transaction"
	recordLoan        = "loan"
)

// moneyLine is a specialized struct to read an amount persisted in two fields.
type moneyLine struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a moneyLine) Money() Money { return M(a.Amount, a.Currency) }

type configLine struct {
	Currency   string   `json:"currency"`
	Banks      []string `json:"banks"`
	Categories []string `json:"categories"`
}

type transactionLine struct {
	ID          string `json:"id"`
	Date        Date   `json:"date"`
	Kind        Kind   `json:"kind"`
	Description string `json:"description"`
	Bank        string `json:"bank"`
	Category    string `json:"category"`
	moneyLine
}

type installmentLine struct {
	ID       string `json:"id"`
	DueDate  Date   `json:"dueDate"`
	Paid     bool   `json:"paid"`
	PaidDate Date   `json:"paidDate"`
	moneyLine
}

type loanLine struct {
	Book             string            `json:"book"`
	ID               string            `json:"id"`
	Counterparty     string            `json:"counterparty"`
	Principal        moneyLine         `json:"principal"`
	StartDate        Date              `json:"startDate"`
	DueDate          Date              `json:"dueDate"`
	InstallmentCount int               `json:"installmentCount"`
	Notes            string            `json:"notes"`
	Schedule         []installmentLine `json:"schedule"`
}

// DecodeLedger decodes a ledger from a stream of JSONL data. The stream must
// carry exactly one config record; transactions are re-sorted chronologically
// after reading.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var config *Config
	var transactions []Transaction
	var taken, given []Loan

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case recordConfig:
			if config != nil {
				return nil, fmt.Errorf("duplicate config record in line %q", string(lineBytes))
			}
			var c configLine
			if err := json.Unmarshal(lineBytes, &c); err != nil {
				return nil, err
			}
			config = &Config{Currency: c.Currency, Banks: c.Banks, Categories: c.Categories}
		case recordTransaction:
			var t transactionLine
			if err := json.Unmarshal(lineBytes, &t); err != nil {
				return nil, err
			}
			transactions = append(transactions, Transaction{
				ID:          t.ID,
				Date:        t.Date,
				Kind:        t.Kind,
				Description: t.Description,
				Amount:      t.Money(),
				Bank:        t.Bank,
				Category:    t.Category,
			})
		case recordLoan:
			var ll loanLine
			if err := json.Unmarshal(lineBytes, &ll); err != nil {
				return nil, err
			}
			book, err := ParseBook(ll.Book)
			if err != nil {
				return nil, fmt.Errorf("in line %q: %w", string(lineBytes), err)
			}
			loan := Loan{
				ID:               ll.ID,
				Counterparty:     ll.Counterparty,
				Principal:        ll.Principal.Money(),
				StartDate:        ll.StartDate,
				DueDate:          ll.DueDate,
				InstallmentCount: ll.InstallmentCount,
				Notes:            ll.Notes,
			}
			for _, il := range ll.Schedule {
				loan.Schedule = append(loan.Schedule, Installment{
					ID:       il.ID,
					DueDate:  il.DueDate,
					Amount:   il.Money(),
					Paid:     il.Paid,
					PaidDate: il.PaidDate,
				})
			}
			if book == Taken {
				taken = append(taken, loan)
			} else {
				given = append(given, loan)
			}
		default:
			return nil, fmt.Errorf("unknown record type: %q", identifier.Record)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if config == nil {
		return nil, fmt.Errorf("ledger stream carries no config record")
	}

	return RestoreLedger(*config, transactions, taken, given)
}

// encodeLine marshals a value and writes it followed by a newline, in JSONL format.
func encodeLine(w io.Writer, v any) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeTransaction writes a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, t Transaction) error {
	return encodeLine(w, t)
}

// EncodeLoan writes a single loan of a book as one JSONL line.
func EncodeLoan(w io.Writer, book Book, loan Loan) error {
	var obj jsonObjectWriter
	obj.Append("record", recordLoan)
	obj.Append("book", book.String())
	obj.EmbedFrom(loan)
	return encodeLine(w, &obj)
}

// EncodeLedger persists a whole ledger to an io.Writer in canonical JSONL
// form: the config record first, then transactions in chronological order,
// then the taken and given loan books in insertion order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	l.stableSort()

	var cfg jsonObjectWriter
	cfg.Append("record", recordConfig)
	cfg.Append("currency", l.config.Currency)
	cfg.Append("banks", l.config.Banks)
	cfg.Append("categories", l.config.Categories)
	if err := encodeLine(w, &cfg); err != nil {
		return err
	}

	for _, t := range l.transactions {
		if err := EncodeTransaction(w, t); err != nil {
			return err
		}
	}
	for _, loan := range l.taken {
		if err := EncodeLoan(w, Taken, loan); err != nil {
			return err
		}
	}
	for _, loan := range l.given {
		if err := EncodeLoan(w, Given, loan); err != nil {
			return err
		}
	}
	return nil
}
