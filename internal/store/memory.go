package store

import "github.com/tally-dev/tally/internal/model"

// MemoryStore holds the document in memory. It backs the memory backend and
// doubles as the test stand-in for the persistence layer.
type MemoryStore struct {
	records []model.Record
	saves   int

	// SaveErr, when set, is returned by Save to simulate a write failure.
	SaveErr error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored records.
func (s *MemoryStore) Load() ([]model.Record, error) {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Save replaces the stored records with a copy of records.
func (s *MemoryStore) Save(records []model.Record) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.records = make([]model.Record, len(records))
	copy(s.records, records)
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (s *MemoryStore) Saves() int { return s.saves }
