package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := New()
		assert.False(t, seen[got], "duplicate id %s", got)
		seen[got] = true
	}
}

func TestNew_Valid(t *testing.T) {
	assert.True(t, Valid(New()))
}

func TestValid(t *testing.T) {
	assert.False(t, Valid(""))
	assert.False(t, Valid("not-an-id"))
	assert.True(t, Valid("5a3b8c9d-1e2f-4a5b-8c9d-0e1f2a3b4c5d"))
}
