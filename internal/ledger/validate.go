package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

var (
	// ErrEmptyDescription rejects empty or whitespace-only descriptions.
	ErrEmptyDescription = errors.New("description must not be empty")
	// ErrInvalidAmount rejects amounts that do not parse to a positive number.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrInvalidType rejects record types outside Income/Expense.
	ErrInvalidType = errors.New("type must be Income or Expense")
)

// ParseAmount parses a raw amount string into a positive decimal.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	return amount, nil
}

// ValidateDescription rejects descriptions that are empty after trimming.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// ValidateType rejects unknown record types.
func ValidateType(t model.RecordType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidType, t)
	}
	return nil
}
