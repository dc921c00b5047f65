// Package ledger owns the in-memory record list. It is the single source of
// truth: derived values are computed from snapshots it hands out, and every
// mutation is written through the injected store.
package ledger

import (
	"fmt"
	"time"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

// Store persists the full record list as one document. Load returns an
// empty list (not an error) when the document is missing or malformed.
type Store interface {
	Load() ([]model.Record, error)
	Save(records []model.Record) error
}

// Service holds the ordered record list, newest first.
type Service struct {
	store   Store
	records []model.Record
	subs    []func([]model.Record)
	newID   func() string
}

// NewService loads the persisted document and returns a Service over it.
func NewService(store Store) (*Service, error) {
	records, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	return &Service{store: store, records: records, newID: id.New}, nil
}

// AddParams holds the entry form fields for a new record.
type AddParams struct {
	Description string
	RawAmount   string
	Category    string
	Type        model.RecordType
	Date        time.Time
}

// Add validates params, assigns a fresh id, and prepends a new record.
// Validation failure mutates nothing. On success the list is saved and
// subscribers are notified; a save failure is returned but the in-memory
// mutation stands.
func (s *Service) Add(p AddParams) (model.Record, error) {
	if err := ValidateDescription(p.Description); err != nil {
		return model.Record{}, err
	}
	amount, err := ParseAmount(p.RawAmount)
	if err != nil {
		return model.Record{}, err
	}
	if err := ValidateType(p.Type); err != nil {
		return model.Record{}, err
	}

	rec := model.Record{
		ID:          s.newID(),
		Description: p.Description,
		Amount:      amount,
		Category:    p.Category,
		Type:        p.Type,
		Date:        p.Date,
	}
	s.records = append([]model.Record{rec}, s.records...)
	saveErr := s.save()
	s.notify()
	return rec, saveErr
}

// Remove deletes the record with the given id. Removing an id that is not
// present is a no-op, not an error, and does not trigger a save.
func (s *Service) Remove(recordID string) error {
	for i, r := range s.records {
		if r.ID != recordID {
			continue
		}
		s.records = append(s.records[:i:i], s.records[i+1:]...)
		saveErr := s.save()
		s.notify()
		return saveErr
	}
	return nil
}

// Find returns the record with the given id, if present.
func (s *Service) Find(recordID string) (model.Record, bool) {
	for _, r := range s.records {
		if r.ID == recordID {
			return r, true
		}
	}
	return model.Record{}, false
}

// All returns a snapshot of the record list, newest first.
func (s *Service) All() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Service) Len() int {
	return len(s.records)
}

// Reload replaces the in-memory list with the persisted document and
// notifies subscribers. Used when the document changed externally.
func (s *Service) Reload() error {
	records, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("reloading records: %w", err)
	}
	s.records = records
	s.notify()
	return nil
}

// Subscribe registers fn to run with a fresh snapshot after every mutation.
func (s *Service) Subscribe(fn func(records []model.Record)) {
	s.subs = append(s.subs, fn)
}

func (s *Service) save() error {
	if err := s.store.Save(s.records); err != nil {
		return fmt.Errorf("saving records: %w", err)
	}
	return nil
}

func (s *Service) notify() {
	for _, fn := range s.subs {
		fn(s.All())
	}
}
