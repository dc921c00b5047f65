// Package summary computes derived aggregates over a record snapshot.
// Everything here is a pure function: callers recompute after each
// record list change.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Balance returns the signed sum over records: Income adds its amount,
// Expense subtracts.
func Balance(records []model.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Type.Signed(r.Amount))
	}
	return total
}

// CategoryTotal is one category's summed expense amount.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CategoryTotals sums Expense records per category label (case-sensitive,
// exact match). Income records are excluded entirely. Categories appear in
// first-seen order over the input.
func CategoryTotals(records []model.Record) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for _, r := range records {
		if r.Type != model.TypeExpense {
			continue
		}
		i, ok := index[r.Category]
		if !ok {
			i = len(totals)
			index[r.Category] = i
			totals = append(totals, CategoryTotal{Category: r.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(r.Amount)
	}
	return totals
}

// ExpenseTotal returns the sum across category totals.
func ExpenseTotal(totals []CategoryTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Total)
	}
	return sum
}
