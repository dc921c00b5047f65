// Package form models the entry form's field state and defaults,
// independent of any rendering layer.
package form

import (
	"time"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

// Form captures user input for one record. Fields are plain values so a
// front end can bind them however it likes.
type Form struct {
	Description string
	RawAmount   string
	Category    string
	Type        model.RecordType
	Date        time.Time

	defaultCategory string
	now             func() time.Time
}

// New creates a Form with every field at its default. now is injectable for
// tests; nil falls back to time.Now.
func New(defaultCategory string, now func() time.Time) *Form {
	if now == nil {
		now = time.Now
	}
	f := &Form{defaultCategory: defaultCategory, now: now}
	f.Reset()
	return f
}

// Reset restores the defaults: cleared description and amount, the default
// category label, Expense type, today's date. The date deliberately resets
// to today after every add rather than keeping the previous entry's date.
func (f *Form) Reset() {
	f.Description = ""
	f.RawAmount = ""
	f.Category = f.defaultCategory
	f.Type = model.TypeExpense
	f.Date = midnight(f.now())
}

// Submit pushes the current fields into the ledger. On validation failure
// nothing mutates and the fields are preserved for correction; on success
// the form resets. A post-mutation save error is passed through alongside
// the created record.
func (f *Form) Submit(svc *ledger.Service) (model.Record, error) {
	rec, err := svc.Add(ledger.AddParams{
		Description: f.Description,
		RawAmount:   f.RawAmount,
		Category:    f.Category,
		Type:        f.Type,
		Date:        f.Date,
	})
	if err != nil && rec.ID == "" {
		return model.Record{}, err
	}
	f.Reset()
	return rec, err
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
