// Package sqlstore persists ledgers in a SQLite database.
//
// It implements the same Store contract as the JSONL file store: Load
// materializes a full ledger, Save rewrites the whole snapshot in one
// transaction. Amounts are stored as decimal strings so no precision is lost
// going through the database.
package sqlstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/avandelay/ledgerbook"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed ledger store.
type Store struct {
	// Path is the SQLite database file.
	Path string
	// Defaults is the configuration used when the database holds no ledger yet.
	Defaults ledgerbook.Config
}

var _ ledgerbook.Store = (*Store)(nil)

// New creates a store for the database at path.
func New(path string, defaults ledgerbook.Config) *Store {
	return &Store{Path: path, Defaults: defaults}
}

func (s *Store) open() (*sql.DB, error) {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}
	if err := runMigrations(s.Path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Load reads the ledger snapshot from the database. A database without a
// config row yields a fresh ledger built from Defaults.
func (s *Store) Load() (*ledgerbook.Ledger, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	config, ok, err := readConfig(db)
	if err != nil {
		return nil, err
	}
	if !ok {
		slog.Debug("no ledger in database, starting fresh", "path", s.Path)
		return ledgerbook.NewLedger(s.Defaults)
	}

	transactions, err := readTransactions(db, config.Currency)
	if err != nil {
		return nil, err
	}
	taken, err := readLoans(db, ledgerbook.Taken, config.Currency)
	if err != nil {
		return nil, err
	}
	given, err := readLoans(db, ledgerbook.Given, config.Currency)
	if err != nil {
		return nil, err
	}

	slog.Debug("ledger loaded from database",
		"path", s.Path,
		"transactions", len(transactions),
		"loans_taken", len(taken),
		"loans_given", len(given))
	return ledgerbook.RestoreLedger(config, transactions, taken, given)
}

// Save rewrites the whole snapshot in a single transaction, so a failed save
// never leaves a half-written ledger behind.
func (s *Store) Save(l *ledgerbook.Ledger) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"installments", "loans", "transactions", "config"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := writeConfig(tx, l.Config()); err != nil {
		return err
	}
	if err := writeTransactions(tx, l.TransactionList()); err != nil {
		return err
	}
	for _, book := range []ledgerbook.Book{ledgerbook.Taken, ledgerbook.Given} {
		if err := writeLoans(tx, book, l.Loans(book)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	slog.Debug("ledger saved to database", "path", s.Path)
	return nil
}

func readConfig(db *sql.DB) (ledgerbook.Config, bool, error) {
	var currency, banks, categories string
	err := db.QueryRow("SELECT currency, banks, categories FROM config WHERE id = 1").
		Scan(&currency, &banks, &categories)
	if err == sql.ErrNoRows {
		return ledgerbook.Config{}, false, nil
	}
	if err != nil {
		return ledgerbook.Config{}, false, fmt.Errorf("read config: %w", err)
	}
	config := ledgerbook.Config{Currency: currency}
	if err := json.Unmarshal([]byte(banks), &config.Banks); err != nil {
		return ledgerbook.Config{}, false, fmt.Errorf("decode banks: %w", err)
	}
	if err := json.Unmarshal([]byte(categories), &config.Categories); err != nil {
		return ledgerbook.Config{}, false, fmt.Errorf("decode categories: %w", err)
	}
	return config, true, nil
}

func writeConfig(tx *sql.Tx, config ledgerbook.Config) error {
	banks, err := json.Marshal(config.Banks)
	if err != nil {
		return fmt.Errorf("encode banks: %w", err)
	}
	categories, err := json.Marshal(config.Categories)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	if _, err := tx.Exec(
		"INSERT INTO config (id, currency, banks, categories) VALUES (1, ?, ?, ?)",
		config.Currency, string(banks), string(categories),
	); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readTransactions(db *sql.DB, currency string) ([]ledgerbook.Transaction, error) {
	rows, err := db.Query(
		"SELECT id, date, kind, description, amount, bank, category FROM transactions ORDER BY pos")
	if err != nil {
		return nil, fmt.Errorf("read transactions: %w", err)
	}
	defer rows.Close()

	var transactions []ledgerbook.Transaction
	for rows.Next() {
		var id, date, kind, description, amount, bank, category string
		if err := rows.Scan(&id, &date, &kind, &description, &amount, &bank, &category); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t := ledgerbook.Transaction{
			ID:          id,
			Description: description,
			Bank:        bank,
			Category:    category,
		}
		if t.Date, err = ledgerbook.ParseDate(date); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", id, err)
		}
		if t.Kind, err = ledgerbook.ParseKind(kind); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", id, err)
		}
		if t.Amount, err = ledgerbook.ParseMoney(amount, currency); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", id, err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func writeTransactions(tx *sql.Tx, transactions []ledgerbook.Transaction) error {
	stmt, err := tx.Prepare(
		"INSERT INTO transactions (pos, id, date, kind, description, amount, bank, category) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare transaction insert: %w", err)
	}
	defer stmt.Close()

	for pos, t := range transactions {
		if _, err := stmt.Exec(pos, t.ID, t.Date.String(), t.Kind.String(),
			t.Description, t.Amount.Amount().String(), t.Bank, t.Category); err != nil {
			return fmt.Errorf("write transaction %s: %w", t.ID, err)
		}
	}
	return nil
}

func readLoans(db *sql.DB, book ledgerbook.Book, currency string) ([]ledgerbook.Loan, error) {
	rows, err := db.Query(
		"SELECT id, counterparty, principal, start_date, due_date, installment_count, notes FROM loans WHERE book = ? ORDER BY pos",
		book.String())
	if err != nil {
		return nil, fmt.Errorf("read %s loans: %w", book, err)
	}
	defer rows.Close()

	var loans []ledgerbook.Loan
	for rows.Next() {
		var loan ledgerbook.Loan
		var principal, start string
		var due sql.NullString
		if err := rows.Scan(&loan.ID, &loan.Counterparty, &principal, &start,
			&due, &loan.InstallmentCount, &loan.Notes); err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		if loan.Principal, err = ledgerbook.ParseMoney(principal, currency); err != nil {
			return nil, fmt.Errorf("loan %s: %w", loan.ID, err)
		}
		if loan.StartDate, err = ledgerbook.ParseDate(start); err != nil {
			return nil, fmt.Errorf("loan %s: %w", loan.ID, err)
		}
		if due.Valid && due.String != "" {
			if loan.DueDate, err = ledgerbook.ParseDate(due.String); err != nil {
				return nil, fmt.Errorf("loan %s: %w", loan.ID, err)
			}
		}
		if loan.Schedule, err = readInstallments(db, book, loan.ID, currency); err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

func readInstallments(db *sql.DB, book ledgerbook.Book, loanID, currency string) ([]ledgerbook.Installment, error) {
	rows, err := db.Query(
		"SELECT id, due_date, amount, paid, paid_date FROM installments WHERE loan_book = ? AND loan_id = ? ORDER BY seq",
		book.String(), loanID)
	if err != nil {
		return nil, fmt.Errorf("read installments of loan %s: %w", loanID, err)
	}
	defer rows.Close()

	var schedule []ledgerbook.Installment
	for rows.Next() {
		var inst ledgerbook.Installment
		var due, amount string
		var paidDate sql.NullString
		if err := rows.Scan(&inst.ID, &due, &amount, &inst.Paid, &paidDate); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		if inst.DueDate, err = ledgerbook.ParseDate(due); err != nil {
			return nil, fmt.Errorf("installment %s: %w", inst.ID, err)
		}
		if inst.Amount, err = ledgerbook.ParseMoney(amount, currency); err != nil {
			return nil, fmt.Errorf("installment %s: %w", inst.ID, err)
		}
		if paidDate.Valid && paidDate.String != "" {
			if inst.PaidDate, err = ledgerbook.ParseDate(paidDate.String); err != nil {
				return nil, fmt.Errorf("installment %s: %w", inst.ID, err)
			}
		}
		schedule = append(schedule, inst)
	}
	return schedule, rows.Err()
}

func writeLoans(tx *sql.Tx, book ledgerbook.Book, loans []ledgerbook.Loan) error {
	loanStmt, err := tx.Prepare(
		"INSERT INTO loans (pos, book, id, counterparty, principal, start_date, due_date, installment_count, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare loan insert: %w", err)
	}
	defer loanStmt.Close()
	instStmt, err := tx.Prepare(
		"INSERT INTO installments (loan_book, loan_id, seq, id, due_date, amount, paid, paid_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare installment insert: %w", err)
	}
	defer instStmt.Close()

	for pos, loan := range loans {
		var due any
		if !loan.DueDate.IsZero() {
			due = loan.DueDate.String()
		}
		if _, err := loanStmt.Exec(pos, book.String(), loan.ID, loan.Counterparty,
			loan.Principal.Amount().String(), loan.StartDate.String(), due,
			loan.InstallmentCount, loan.Notes); err != nil {
			return fmt.Errorf("write loan %s: %w", loan.ID, err)
		}
		for seq, inst := range loan.Schedule {
			var paidDate any
			if inst.Paid {
				paidDate = inst.PaidDate.String()
			}
			if _, err := instStmt.Exec(book.String(), loan.ID, seq, inst.ID,
				inst.DueDate.String(), inst.Amount.Amount().String(),
				inst.Paid, paidDate); err != nil {
				return fmt.Errorf("write installment %s of loan %s: %w", inst.ID, loan.ID, err)
			}
		}
	}
	return nil
}
