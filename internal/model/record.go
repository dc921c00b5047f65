package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordType classifies a record as money in or money out.
type RecordType string

const (
	TypeIncome  RecordType = "Income"
	TypeExpense RecordType = "Expense"
)

// Valid reports whether t is a known record type.
func (t RecordType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Signed applies the sign implied by t: Expense amounts count negative.
func (t RecordType) Signed(amount decimal.Decimal) decimal.Decimal {
	if t == TypeExpense {
		return amount.Neg()
	}
	return amount
}

// Record is a single income or expense entry. Records are immutable once
// created; Amount is always positive and the sign is carried by Type.
type Record struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    string
	Type        RecordType
	Date        time.Time // calendar date, informational only
}

// SignedAmount returns the amount with its type's sign applied.
func (r Record) SignedAmount() decimal.Decimal {
	return r.Type.Signed(r.Amount)
}
