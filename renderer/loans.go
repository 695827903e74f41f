package renderer

import (
	"bytes"
	"fmt"

	"github.com/avandelay/ledgerbook"
	md "github.com/nao1215/markdown"
)

// LoansMarkdown renders one loan book with per-loan repayment progress.
func LoansMarkdown(book ledgerbook.Book, loans []ledgerbook.Loan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	switch book {
	case ledgerbook.Taken:
		doc.H1("Loans Taken")
	case ledgerbook.Given:
		doc.H1("Loans Given")
	}
	if len(loans) == 0 {
		doc.PlainText("No loans in this book.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"ID", "Counterparty", "Principal", "Repaid", "Outstanding", "Start"},
		Rows:   [][]string{},
	}
	for _, loan := range loans {
		table.Rows = append(table.Rows, []string{
			loan.ID,
			loan.Counterparty,
			loan.Principal.String(),
			loan.Repaid().String(),
			loan.Outstanding().String(),
			loan.StartDate.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// ScheduleMarkdown renders one loan's installment schedule.
func ScheduleMarkdown(loan ledgerbook.Loan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Schedule for %s", loan.Counterparty))
	doc.PlainText(fmt.Sprintf("Principal %s starting %s", loan.Principal, loan.StartDate))
	if loan.Notes != "" {
		doc.PlainText(loan.Notes)
	}
	if len(loan.Schedule) == 0 {
		doc.PlainText("This loan has no installment schedule.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"ID", "Due", "Amount", "Paid"},
		Rows:   [][]string{},
	}
	for _, inst := range loan.Schedule {
		paid := ""
		if inst.Paid {
			paid = fmt.Sprintf("paid %s", inst.PaidDate)
		}
		table.Rows = append(table.Rows, []string{
			inst.ID,
			inst.DueDate.String(),
			inst.Amount.String(),
			paid,
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Outstanding: %s", loan.Outstanding()))

	return doc.String()
}
