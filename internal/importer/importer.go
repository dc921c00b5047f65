// Package importer converts bank CSV exports into ledger records. Imported
// rows go through the ledger's normal Add path, so they get the same
// validation, ids, ordering, and persistence as form entries.
package importer

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

// Row is one imported transaction before it enters the ledger. Amount is
// signed: negative means expense, positive means income.
type Row struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string // optional; empty falls back to the default label
}

// Parser converts a bank CSV export into Rows.
type Parser interface {
	Parse(r io.Reader) ([]Row, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&GenericParser{})
	return r
}

// Import adds rows to the ledger. The amount's sign selects the record
// type; the stored amount is always positive. Returns the created records;
// the first invalid row aborts the import with row context.
func Import(svc *ledger.Service, rows []Row, defaultCategory string) ([]model.Record, error) {
	added := make([]model.Record, 0, len(rows))
	for i, row := range rows {
		recType := model.TypeIncome
		if row.Amount.IsNegative() {
			recType = model.TypeExpense
		}
		category := row.Category
		if category == "" {
			category = defaultCategory
		}
		rec, err := svc.Add(ledger.AddParams{
			Description: row.Description,
			RawAmount:   row.Amount.Abs().String(),
			Category:    category,
			Type:        recType,
			Date:        row.Date,
		})
		if err != nil {
			return added, fmt.Errorf("row %d: %w", i+1, err)
		}
		added = append(added, rec)
	}
	return added, nil
}
