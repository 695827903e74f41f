package renderer

import (
	"bytes"
	"fmt"

	"github.com/avandelay/ledgerbook"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the running balance of one bank, newest entry first.
func HistoryMarkdown(bank string, entries []ledgerbook.BalanceEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", bank))
	if len(entries) == 0 {
		doc.PlainText("No transactions recorded for this bank.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Description", "Amount", "Balance"},
		Rows:   [][]string{},
	}
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		table.Rows = append(table.Rows, []string{
			entry.Date.String(),
			entry.Description,
			entry.Signed().SignedString(),
			entry.Balance.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
