package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(category, amount string) model.Record {
	return model.Record{Category: category, Amount: dec(amount), Type: model.TypeExpense}
}

func income(category, amount string) model.Record {
	return model.Record{Category: category, Amount: dec(amount), Type: model.TypeIncome}
}

func TestBalance_Empty(t *testing.T) {
	assert.True(t, Balance(nil).IsZero())
}

func TestBalance_SignedSum(t *testing.T) {
	records := []model.Record{
		income("Other", "1000"),
		expense("Food", "4.50"),
		expense("Rent", "600"),
		income("Other", "250.25"),
	}
	assert.Equal(t, "645.75", Balance(records).StringFixed(2))
}

func TestBalance_OrderIndependent(t *testing.T) {
	a := []model.Record{income("x", "10"), expense("y", "3"), expense("z", "2")}
	b := []model.Record{expense("z", "2"), income("x", "10"), expense("y", "3")}
	assert.True(t, Balance(a).Equal(Balance(b)))
}

func TestCategoryTotals_ExcludesIncome(t *testing.T) {
	records := []model.Record{
		income("Food", "500"), // same label as an expense category
		expense("Food", "4.50"),
	}
	totals := CategoryTotals(records)
	require.Len(t, totals, 1)
	assert.Equal(t, "Food", totals[0].Category)
	assert.Equal(t, "4.50", totals[0].Total.StringFixed(2))
}

func TestCategoryTotals_GroupsAndSums(t *testing.T) {
	records := []model.Record{
		expense("Food", "4.50"),
		expense("Transport", "12"),
		expense("Food", "8.25"),
	}
	totals := CategoryTotals(records)
	require.Len(t, totals, 2)
	assert.Equal(t, "Food", totals[0].Category, "first-seen order")
	assert.Equal(t, "12.75", totals[0].Total.StringFixed(2))
	assert.Equal(t, "Transport", totals[1].Category)
	assert.Equal(t, "12.00", totals[1].Total.StringFixed(2))
}

func TestCategoryTotals_CaseSensitive(t *testing.T) {
	records := []model.Record{
		expense("food", "1"),
		expense("Food", "2"),
	}
	totals := CategoryTotals(records)
	require.Len(t, totals, 2, "labels match exactly, case-sensitive")
}

func TestCategoryTotals_Empty(t *testing.T) {
	assert.Empty(t, CategoryTotals(nil))
	assert.Empty(t, CategoryTotals([]model.Record{income("Other", "10")}))
}

func TestExpenseTotal(t *testing.T) {
	totals := CategoryTotals([]model.Record{
		expense("Food", "4.50"),
		expense("Rent", "600"),
	})
	assert.Equal(t, "604.50", ExpenseTotal(totals).StringFixed(2))
}
