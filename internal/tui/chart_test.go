package tui

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/summary"
)

func total(category, amount string) summary.CategoryTotal {
	return summary.CategoryTotal{Category: category, Total: decimal.RequireFromString(amount)}
}

func TestRenderChart_Empty(t *testing.T) {
	lines := renderChart(nil, 30, "$")
	require.Len(t, lines, 1)
	assert.Equal(t, "No expenses recorded yet.", lines[0])
}

func TestRenderChart_ProportionalBars(t *testing.T) {
	totals := []summary.CategoryTotal{
		total("Rent", "600"),
		total("Food", "200"),
	}

	lines := renderChart(totals, 20, "$")
	require.Len(t, lines, 2)

	// 600/800 = 75% of 20 = 15 cells; 200/800 = 25% = 5 cells.
	assert.Equal(t, 15, strings.Count(lines[0], "█"))
	assert.Equal(t, 5, strings.Count(lines[1], "█"))

	assert.Contains(t, lines[0], "Rent")
	assert.Contains(t, lines[0], "$600.00")
	assert.Contains(t, lines[0], "75.0%")
	assert.Contains(t, lines[1], "25.0%")
}

func TestRenderChart_TinyShareStillVisible(t *testing.T) {
	totals := []summary.CategoryTotal{
		total("Rent", "10000"),
		total("Food", "0.01"),
	}

	lines := renderChart(totals, 20, "$")
	require.Len(t, lines, 2)
	assert.GreaterOrEqual(t, strings.Count(lines[1], "█"), 1, "non-zero categories always show a bar")
}

func TestRenderChart_PreservesOrder(t *testing.T) {
	totals := []summary.CategoryTotal{
		total("Zebra", "1"),
		total("Apple", "1"),
	}

	lines := renderChart(totals, 10, "$")
	assert.Contains(t, lines[0], "Zebra", "first-seen order, no re-sorting")
	assert.Contains(t, lines[1], "Apple")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 14))
	assert.Equal(t, "exactly-14-chr", truncate("exactly-14-chr", 14))
	assert.Equal(t, "much-too-long…", truncate("much-too-long-category", 14))
	assert.Len(t, []rune(truncate("much-too-long-category", 14)), 14)
}
