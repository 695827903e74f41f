package ledgerbook

import (
	"maps"
	"slices"
)

// This file is the aggregation engine: pure, side-effect-free folds over a
// transaction snapshot. Every function here is a single O(n) pass plus a
// final ordering of the grouped keys; none of them mutates its input, and
// repeated calls on the same snapshot yield identical results.

// Totals are grand sums over a transaction collection.
type Totals struct {
	Income  Money
	Expense Money
	Net     Money // Income - Expense
}

// PeriodTotals are the sums for one period bucket.
type PeriodTotals struct {
	Key string // period key: YYYY-MM-DD, YYYY-MM or YYYY
	Totals
}

// GrandTotals sums income and expense over the whole collection.
// Every transaction counts, whatever its bank or category.
func GrandTotals(transactions []Transaction) Totals {
	var t Totals
	for _, tx := range transactions {
		switch tx.Kind {
		case Income:
			t.Income = t.Income.Add(tx.Amount)
		case Expense:
			t.Expense = t.Expense.Add(tx.Amount)
		}
	}
	t.Net = t.Income.Sub(t.Expense)
	return t
}

// BankBalances computes the signed net total per bank of the closed set.
// Transactions referencing a bank outside the set are silently excluded: the
// set is closed and validated upstream, so such records can only come from
// hand-edited files and must not fault the whole aggregation.
func BankBalances(transactions []Transaction, banks BankSet) map[string]Money {
	balances := make(map[string]Money, len(banks))
	for _, bank := range banks {
		balances[bank] = Money{}
	}
	for _, tx := range transactions {
		if _, ok := balances[tx.Bank]; !ok {
			continue
		}
		balances[tx.Bank] = balances[tx.Bank].Add(tx.Signed())
	}
	return balances
}

// TotalsBy groups transactions into period buckets and sums income and
// expense per bucket. Buckets with no transactions are omitted (the series is
// sparse, not densified). The result is ordered ascending by period key;
// since keys are fixed-width and zero-padded, this is chronological order.
func TotalsBy(period Period, transactions []Transaction) []PeriodTotals {
	groups := make(map[string]Totals)
	for _, tx := range transactions {
		key := period.Key(tx.Date)
		t := groups[key]
		switch tx.Kind {
		case Income:
			t.Income = t.Income.Add(tx.Amount)
		case Expense:
			t.Expense = t.Expense.Add(tx.Amount)
		}
		groups[key] = t
	}

	result := make([]PeriodTotals, 0, len(groups))
	for _, key := range slices.Sorted(maps.Keys(groups)) {
		t := groups[key]
		t.Net = t.Income.Sub(t.Expense)
		result = append(result, PeriodTotals{Key: key, Totals: t})
	}
	return result
}

// DailyTotals buckets by exact date.
func DailyTotals(transactions []Transaction) []PeriodTotals {
	return TotalsBy(Daily, transactions)
}

// MonthlyTotals buckets by calendar month.
func MonthlyTotals(transactions []Transaction) []PeriodTotals {
	return TotalsBy(Monthly, transactions)
}

// YearlyTotals buckets by calendar year.
func YearlyTotals(transactions []Transaction) []PeriodTotals {
	return TotalsBy(Yearly, transactions)
}

// BalanceEntry is one transaction of a bank together with the bank's balance
// after it.
type BalanceEntry struct {
	Transaction
	Balance Money
}

// RunningBalance restricts the snapshot to one bank and computes the
// cumulative signed balance left to right, oldest first. Presentation order
// (typically newest first) is the caller's concern, not an engine invariant.
func RunningBalance(transactions []Transaction, bank string) []BalanceEntry {
	var entries []BalanceEntry
	var balance Money
	for _, tx := range transactions {
		if tx.Bank != bank {
			continue
		}
		balance = balance.Add(tx.Signed())
		entries = append(entries, BalanceEntry{Transaction: tx, Balance: balance})
	}
	return entries
}
