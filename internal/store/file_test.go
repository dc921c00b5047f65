package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func sampleRecords() []model.Record {
	return []model.Record{
		{
			ID:          "a1",
			Description: "Paycheck",
			Amount:      decimal.RequireFromString("1000"),
			Category:    "Other",
			Type:        model.TypeIncome,
			Date:        time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "b2",
			Description: "Coffee",
			Amount:      decimal.RequireFromString("4.5"),
			Category:    "Food",
			Type:        model.TypeExpense,
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	s := NewFileStore(path)

	want := sampleRecords()
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.True(t, want[i].Amount.Equal(got[i].Amount), "amount %s != %s", want[i].Amount, got[i].Amount)
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.Equal(t, want[i].Type, got[i].Type)
		assert.True(t, want[i].Date.Equal(got[i].Date))
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_MalformedDocumentIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"wrong shape", `{"records": []}`},
		{"bad date", `[{"id":"x","description":"d","amount":1,"category":"c","type":"Expense","date":"January 1st"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "records.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			got, err := NewFileStore(path).Load()
			require.NoError(t, err, "malformed content degrades silently")
			assert.Empty(t, got)
		})
	}
}

func TestFileStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "records.json")
	require.NoError(t, NewFileStore(path).Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(sampleRecords()))
	require.NoError(t, s.Save(nil))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}
