// Package renderer turns report structures into markdown documents.
// It holds no business logic: amounts and orderings come in already computed.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/avandelay/ledgerbook"
	md "github.com/nao1215/markdown"
)

func MonthlyMarkdown(rows []ledgerbook.MonthlyRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Report")
	if len(rows) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Income", "Expense", "Saving"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Month,
			row.Income.String(),
			row.Expense.String(),
			row.Saving.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

func YearlyMarkdown(rows []ledgerbook.YearlyRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Yearly Report")
	if len(rows) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Year", "Income", "Expense", "Saving"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Year,
			row.Income.String(),
			row.Expense.String(),
			row.Saving.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// BanksMarkdown renders the per-bank balance snapshot. The rows arrive in the
// configured bank order and total is the net over the whole ledger.
func BanksMarkdown(rows []ledgerbook.BankRow, total ledgerbook.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bank Balances")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Bank", "Balance"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{row.Bank, row.Balance.String()})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total: %s", total.String()))

	return doc.String()
}

func TotalsMarkdown(t ledgerbook.Totals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Totals")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Amount"},
		Rows: [][]string{
			{"Income", t.Income.String()},
			{"Expense", t.Expense.String()},
			{"Net", t.Net.SignedString()},
		},
	}
	doc.Table(table)

	return doc.String()
}
