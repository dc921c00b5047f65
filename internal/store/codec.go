package store

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// recordJSON is the persisted wire form of a record.
type recordJSON struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
}

const dateFormat = "2006-01-02"

func marshalRecords(records []model.Record) ([]byte, error) {
	rows := make([]recordJSON, 0, len(records))
	for _, r := range records {
		rows = append(rows, recordJSON{
			ID:          r.ID,
			Description: r.Description,
			Amount:      r.Amount.InexactFloat64(),
			Category:    r.Category,
			Type:        string(r.Type),
			Date:        r.Date.Format(dateFormat),
		})
	}
	return json.MarshalIndent(rows, "", "  ")
}

// unmarshalRecords parses a persisted document. Malformed content is
// treated as absent: the whole list degrades to empty, it is not repaired
// row by row.
func unmarshalRecords(data []byte) []model.Record {
	var rows []recordJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil
	}
	records := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(dateFormat, row.Date)
		if err != nil {
			return nil
		}
		records = append(records, model.Record{
			ID:          row.ID,
			Description: row.Description,
			Amount:      decimal.NewFromFloat(row.Amount),
			Category:    row.Category,
			Type:        model.RecordType(row.Type),
			Date:        date,
		})
	}
	return records
}
