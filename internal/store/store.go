// Package store persists the record list as a single serialized document
// under one fixed key. Backends are interchangeable: a JSON file, a sqlite
// key-value row, or an in-memory double for tests.
package store

import (
	"fmt"

	"github.com/tally-dev/tally/internal/model"
)

// Store is the common surface of all backends. Load returns an empty list
// (not an error) when the document is missing or malformed; Save overwrites
// the full document and is invoked on every mutation, unbatched.
type Store interface {
	Load() ([]model.Record, error)
	Save(records []model.Record) error
}

// Backend selects a persistence implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Valid reports whether b names a known backend.
func (b Backend) Valid() bool {
	switch b {
	case BackendFile, BackendSQLite, BackendMemory:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

func noopCleanup() error { return nil }

// Open creates the configured backend over the document at path.
func Open(backend Backend, path string) (Store, CleanupFunc, error) {
	switch backend {
	case BackendFile:
		return NewFileStore(path), noopCleanup, nil
	case BackendSQLite:
		s, err := NewSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case BackendMemory:
		return NewMemoryStore(), noopCleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}
