// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/avandelay/ledgerbook"
	"github.com/avandelay/ledgerbook/sqlstore"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{kind: ledgerbook.Income}, "transactions")
	c.Register(&addCmd{kind: ledgerbook.Expense}, "transactions")
	c.Register(&deleteCmd{}, "transactions")

	c.Register(&loanCmd{book: ledgerbook.Taken}, "loans")
	c.Register(&loanCmd{book: ledgerbook.Given}, "loans")
	c.Register(&loansCmd{}, "loans")
	c.Register(&payCmd{}, "loans")

	c.Register(&monthlyCmd{}, "reports")
	c.Register(&yearlyCmd{}, "reports")
	c.Register(&banksCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&totalsCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", envOr("LEDGERBOOK_FILE", "ledger.jsonl"), "Path to the ledger file (JSONL format)")
	dbFile     = flag.String("db-file", envOr("LEDGERBOOK_DB", "ledger.db"), "Path to the SQLite database used by the sqlite store")
	storeKind  = flag.String("store", envOr("LEDGERBOOK_STORE", "file"), "Ledger store backend: file or sqlite")
	currency   = flag.String("currency", envOr("LEDGERBOOK_CURRENCY", "EUR"), "Currency of a newly created ledger")
	banks      = flag.String("banks", envOr("LEDGERBOOK_BANKS", "checking,savings,cash"), "Comma-separated bank set of a newly created ledger")
	categories = flag.String("categories", envOr("LEDGERBOOK_CATEGORIES", "salary,groceries,rent,other"), "Comma-separated category set of a newly created ledger")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// defaults returns the configuration for a ledger created from scratch.
// An existing store keeps the configuration it was created with.
func defaults() ledgerbook.Config {
	return ledgerbook.Config{
		Currency:   *currency,
		Banks:      splitList(*banks),
		Categories: splitList(*categories),
	}
}

// openStore selects the store backend from the global flags.
func openStore() (ledgerbook.Store, error) {
	switch *storeKind {
	case "file":
		return ledgerbook.NewFileStore(*ledgerFile, defaults()), nil
	case "sqlite":
		return sqlstore.New(*dbFile, defaults()), nil
	default:
		return nil, fmt.Errorf("unknown store %q, want file or sqlite", *storeKind)
	}
}

func loadLedger() (*ledgerbook.Ledger, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	return store.Load()
}

func saveLedger(l *ledgerbook.Ledger) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	return store.Save(l)
}
