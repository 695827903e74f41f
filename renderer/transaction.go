package renderer

import (
	"fmt"

	"github.com/avandelay/ledgerbook"
)

// Transaction renders a transaction to a one-line string.
func Transaction(t ledgerbook.Transaction) string {
	switch t.Kind {
	case ledgerbook.Income:
		return fmt.Sprintf("Received %s on %s (%s, %s)", t.Amount, t.Bank, t.Category, t.Date)
	case ledgerbook.Expense:
		return fmt.Sprintf("Spent %s from %s (%s, %s)", t.Amount, t.Bank, t.Category, t.Date)
	default:
		return t.Description
	}
}
