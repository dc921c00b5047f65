package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/tally-dev/tally/internal/summary"
)

// renderChart returns one line per category with a bar proportional to its
// share of total expenses, or a placeholder when there are no expenses.
func renderChart(totals []summary.CategoryTotal, barWidth int, currency string) []string {
	if len(totals) == 0 {
		return []string{"No expenses recorded yet."}
	}

	sum := summary.ExpenseTotal(totals)
	lines := make([]string, 0, len(totals))
	for _, t := range totals {
		share := t.Total.Div(sum).InexactFloat64()
		w := int(math.Round(share * float64(barWidth)))
		if w < 1 {
			w = 1
		}
		lines = append(lines, fmt.Sprintf("%-14s %10s %5.1f%%  %s",
			truncate(t.Category, 14),
			currency+t.Total.StringFixed(2),
			share*100,
			strings.Repeat("█", w),
		))
	}
	return lines
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
