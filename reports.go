package ledgerbook

// Report composition: thin, stateless adapters that shape the aggregation
// engine's outputs into the fixed report views consumed by presentation.
// No additional computation happens here; only ordering and field selection.

// MonthlyRow is one row of the monthly report table.
type MonthlyRow struct {
	Month   string // YYYY-MM
	Income  Money
	Expense Money
	Saving  Money
}

// YearlyRow is one row of the yearly report table.
type YearlyRow struct {
	Year    string // YYYY
	Income  Money
	Expense Money
	Saving  Money
}

// BankRow is one row of the bank snapshot: a bank of the closed set and its
// current net balance.
type BankRow struct {
	Bank    string
	Balance Money
}

// MonthlyReport returns the monthly table rows, oldest month first.
func (l *Ledger) MonthlyReport() []MonthlyRow {
	totals := MonthlyTotals(l.transactions)
	rows := make([]MonthlyRow, len(totals))
	for i, t := range totals {
		rows[i] = MonthlyRow{Month: t.Key, Income: t.Income, Expense: t.Expense, Saving: t.Net}
	}
	return rows
}

// YearlyReport returns the yearly table rows, oldest year first.
func (l *Ledger) YearlyReport() []YearlyRow {
	totals := YearlyTotals(l.transactions)
	rows := make([]YearlyRow, len(totals))
	for i, t := range totals {
		rows[i] = YearlyRow{Year: t.Key, Income: t.Income, Expense: t.Expense, Saving: t.Net}
	}
	return rows
}

// BankSnapshot returns one row per configured bank, in the bank set's order.
func (l *Ledger) BankSnapshot() []BankRow {
	balances := BankBalances(l.transactions, l.config.Banks)
	rows := make([]BankRow, 0, len(l.config.Banks))
	for _, bank := range l.config.Banks {
		rows = append(rows, BankRow{Bank: bank, Balance: balances[bank]})
	}
	return rows
}

// Summary returns the grand totals over the whole ledger.
func (l *Ledger) Summary() Totals {
	return GrandTotals(l.transactions)
}

// History returns the running balance entries for one bank, oldest first.
func (l *Ledger) History(bank string) []BalanceEntry {
	return RunningBalance(l.transactions, bank)
}
