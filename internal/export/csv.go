// Package export serializes aggregation output for download and alerting
// surfaces: a CSV drift table, a pretty-printed JSON snapshot, and a
// generated alerting-rule block.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/prismview/prism/internal/model"
)

// DriftCSV renders the drift comparison table as CSV with a header row.
func DriftCSV(records []model.DriftRecord) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"service", "severity", "baseline", "current", "delta", "percent_change", "tier"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("export: write csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Service,
			r.Severity,
			strconv.Itoa(r.Baseline),
			strconv.Itoa(r.Current),
			strconv.Itoa(r.Delta),
			strconv.FormatFloat(r.PercentChange, 'f', 2, 64),
			string(r.Tier),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("export: write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export: flush csv: %w", err)
	}
	return buf.String(), nil
}
