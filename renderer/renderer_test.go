package renderer

import (
	"strings"
	"testing"

	"github.com/avandelay/ledgerbook"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// h1 parses a markdown document and returns the text of its first level-1
// heading, failing the test when the document has none.
func h1(t *testing.T, doc string) string {
	t.Helper()
	source := []byte(doc)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	var title string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 && title == "" {
			var sb strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					sb.Write(txt.Segment.Value(source))
				}
			}
			title = sb.String()
		}
		return ast.WalkContinue, nil
	})
	if title == "" {
		t.Fatalf("document has no level-1 heading:\n%s", doc)
	}
	return title
}

func m(v float64) ledgerbook.Money { return ledgerbook.M(v, "EUR") }

func TestMonthlyMarkdown(t *testing.T) {
	rows := []ledgerbook.MonthlyRow{
		{Month: "2024-01", Income: m(100), Expense: m(40), Saving: m(60)},
		{Month: "2024-02", Income: m(50), Expense: m(0), Saving: m(50)},
	}
	doc := MonthlyMarkdown(rows)
	if got := h1(t, doc); got != "Monthly Report" {
		t.Errorf("title = %q", got)
	}
	for _, want := range []string{"2024-01", "2024-02", "€100.00", "+€60.00"} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}
}

func TestMonthlyMarkdown_Empty(t *testing.T) {
	doc := MonthlyMarkdown(nil)
	if !strings.Contains(doc, "No transactions recorded.") {
		t.Errorf("empty report placeholder missing:\n%s", doc)
	}
}

func TestYearlyMarkdown(t *testing.T) {
	rows := []ledgerbook.YearlyRow{
		{Year: "2024", Income: m(4100), Expense: m(920.50), Saving: m(3179.50)},
	}
	doc := YearlyMarkdown(rows)
	if got := h1(t, doc); got != "Yearly Report" {
		t.Errorf("title = %q", got)
	}
	if !strings.Contains(doc, "| 2024 |") {
		t.Errorf("missing year row:\n%s", doc)
	}
}

func TestBanksMarkdown(t *testing.T) {
	rows := []ledgerbook.BankRow{
		{Bank: "checking", Balance: m(3300)},
		{Bank: "cash", Balance: m(-120.50)},
	}
	doc := BanksMarkdown(rows, m(3179.50))
	if got := h1(t, doc); got != "Bank Balances" {
		t.Errorf("title = %q", got)
	}
	for _, want := range []string{"checking", "cash", "Total: €3,179.50"} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}
}

func TestHistoryMarkdown_NewestFirst(t *testing.T) {
	entries := []ledgerbook.BalanceEntry{
		{
			Transaction: ledgerbook.Transaction{
				Date:        ledgerbook.MustParseDate("2024-01-01"),
				Kind:        ledgerbook.Income,
				Description: "salary",
				Amount:      m(100),
				Bank:        "checking",
				Category:    "salary",
			},
			Balance: m(100),
		},
		{
			Transaction: ledgerbook.Transaction{
				Date:        ledgerbook.MustParseDate("2024-01-03"),
				Kind:        ledgerbook.Expense,
				Description: "rent",
				Amount:      m(30),
				Bank:        "checking",
				Category:    "rent",
			},
			Balance: m(70),
		},
	}
	doc := HistoryMarkdown("checking", entries)
	if got := h1(t, doc); got != "History for checking" {
		t.Errorf("title = %q", got)
	}
	// The most recent entry is listed first.
	if strings.Index(doc, "2024-01-03") > strings.Index(doc, "2024-01-01") {
		t.Errorf("entries not newest first:\n%s", doc)
	}
	if !strings.Contains(doc, "-€30.00") {
		t.Errorf("expense not rendered signed:\n%s", doc)
	}
}

func TestLoansMarkdown(t *testing.T) {
	loan, err := ledgerbook.NewLoan("Ada", m(900), ledgerbook.MustParseDate("2024-01-10"), ledgerbook.Date{}, 3, "")
	if err != nil {
		t.Fatalf("NewLoan() error = %v", err)
	}
	doc := LoansMarkdown(ledgerbook.Given, []ledgerbook.Loan{loan})
	if got := h1(t, doc); got != "Loans Given" {
		t.Errorf("title = %q", got)
	}
	for _, want := range []string{"Ada", "€900.00", "2024-01-10"} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}

	doc = LoansMarkdown(ledgerbook.Taken, nil)
	if got := h1(t, doc); got != "Loans Taken" {
		t.Errorf("title = %q", got)
	}
	if !strings.Contains(doc, "No loans in this book.") {
		t.Errorf("empty book placeholder missing:\n%s", doc)
	}
}

func TestScheduleMarkdown(t *testing.T) {
	loan, err := ledgerbook.NewLoan("Ada", m(1000), ledgerbook.MustParseDate("2024-01-15"), ledgerbook.Date{}, 3, "laptop")
	if err != nil {
		t.Fatalf("NewLoan() error = %v", err)
	}
	if _, err := loan.Toggle(loan.Schedule[0].ID, ledgerbook.MustParseDate("2024-02-16")); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	doc := ScheduleMarkdown(loan)
	for _, want := range []string{"2024-02-15", "2024-03-15", "2024-04-15", "paid 2024-02-16", "laptop", "Outstanding: €666.67"} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}
}

func TestTransaction(t *testing.T) {
	in := ledgerbook.Transaction{
		Date:     ledgerbook.MustParseDate("2024-01-15"),
		Kind:     ledgerbook.Expense,
		Amount:   m(40.25),
		Bank:     "checking",
		Category: "groceries",
	}
	got := Transaction(in)
	for _, want := range []string{"Spent", "€40.25", "checking", "groceries", "2024-01-15"} {
		if !strings.Contains(got, want) {
			t.Errorf("Transaction() = %q, missing %q", got, want)
		}
	}
}
