package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/prismview/prism/internal/model"
)

// Snapshot is the exported JSON wrapper: query metadata plus the record
// set and drift table it produced.
type Snapshot struct {
	ExportedAt time.Time           `json:"exported_at"`
	Query      string              `json:"query"`
	RowCount   int                 `json:"row_count"`
	Records    []snapshotRecord    `json:"records"`
	Drift      []model.DriftRecord `json:"drift,omitempty"`
}

type snapshotRecord struct {
	Timestamp time.Time         `json:"timestamp"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// SnapshotJSON pretty-prints a snapshot of the given query result.
func SnapshotJSON(query string, records []model.LogRecord, drift []model.DriftRecord, now time.Time) (string, error) {
	snap := Snapshot{
		ExportedAt: now.UTC(),
		Query:      query,
		RowCount:   len(records),
		Records:    make([]snapshotRecord, 0, len(records)),
		Drift:      drift,
	}
	for _, r := range records {
		snap.Records = append(snap.Records, snapshotRecord{
			Timestamp: r.Timestamp,
			Message:   r.Message,
			Fields:    r.Fields,
		})
	}

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: marshal snapshot: %w", err)
	}
	return string(out), nil
}
