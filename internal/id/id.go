package id

import "github.com/google/uuid"

// New returns a fresh opaque record identifier. Identifiers are unique,
// assigned once at creation, and used only for lookup and removal.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s is a well-formed record identifier.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
