package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_Valid(t *testing.T) {
	assert.True(t, BackendFile.Valid())
	assert.True(t, BackendSQLite.Valid())
	assert.True(t, BackendMemory.Valid())
	assert.False(t, Backend("postgres").Valid())
	assert.False(t, Backend("").Valid())
}

func TestOpen_File(t *testing.T) {
	s, cleanup, err := Open(BackendFile, filepath.Join(t.TempDir(), "records.json"))
	require.NoError(t, err)
	defer cleanup()

	assert.IsType(t, &FileStore{}, s)
}

func TestOpen_SQLite(t *testing.T) {
	s, cleanup, err := Open(BackendSQLite, filepath.Join(t.TempDir(), "tally.db"))
	require.NoError(t, err)
	defer cleanup()

	assert.IsType(t, &SQLiteStore{}, s)
}

func TestOpen_Memory(t *testing.T) {
	s, cleanup, err := Open(BackendMemory, "")
	require.NoError(t, err)
	defer cleanup()

	assert.IsType(t, &MemoryStore{}, s)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, _, err := Open(Backend("redis"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestMemoryStore_SaveErr(t *testing.T) {
	s := NewMemoryStore()
	s.SaveErr = errors.New("disk full")

	require.Error(t, s.Save(sampleRecords()))
	assert.Equal(t, 0, s.Saves())

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got, "failed save leaves nothing behind")
}

func TestMemoryStore_CopiesOnLoad(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save(sampleRecords()))

	got, err := s.Load()
	require.NoError(t, err)
	got[0].Description = "mutated"

	again, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "Paycheck", again[0].Description, "callers get copies, not the backing slice")
}
