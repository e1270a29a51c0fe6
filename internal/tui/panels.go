package tui

import (
	"time"

	"github.com/prismview/prism/internal/aggregate"
	"github.com/prismview/prism/internal/model"
)

// Panel is one chart section of the dashboard deck. Each panel renders
// from the shared snapshot; panels hold no data of their own.
type Panel interface {
	// ID is a stable short name used for ordering and selection.
	ID() string
	Title() string
	// Render draws the panel body at the given inner size.
	Render(s *snapshot, width, height int) string
}

// snapshot is one fully computed view of the loaded records. It is
// rebuilt after every fetch so panels stay cheap to render.
type snapshot struct {
	records  []model.LogRecord
	stats    model.ScanStats
	levels   []model.DimensionCount
	services []model.DimensionCount
	hosts    []model.DimensionCount
	timeline []model.TimeBucket
	errStats aggregate.ErrorStats
	gauges   []model.GaugeMetric
	activity aggregate.ActivityGrid
	drift    []model.DriftRecord
}

func buildSnapshot(records []model.LogRecord, stats model.ScanStats, thresholds model.DriftThresholds) *snapshot {
	s := &snapshot{records: records, stats: stats}
	s.levels = aggregate.TopN(aggregate.CountByField(records, "level"), 6)
	s.services = aggregate.TopN(aggregate.CountByField(records, "service"), 10)
	s.hosts = aggregate.TopN(aggregate.CountByField(records, "host"), 8)
	s.timeline = aggregate.BucketCounts(records, 5*time.Minute)
	s.errStats = aggregate.ComputeErrorStats(records)
	s.gauges = aggregate.Gauges(records)
	s.activity = aggregate.HourOfWeek(records)
	s.drift = windowDrift(records, thresholds)
	return s
}

// windowDrift splits the loaded window in half by time and compares the
// two halves, so drift is visible without a second query.
func windowDrift(records []model.LogRecord, thresholds model.DriftThresholds) []model.DriftRecord {
	if len(records) < 2 {
		return nil
	}
	min, max := records[0].Timestamp, records[0].Timestamp
	for _, r := range records[1:] {
		if r.Timestamp.Before(min) {
			min = r.Timestamp
		}
		if r.Timestamp.After(max) {
			max = r.Timestamp
		}
	}
	mid := min.Add(max.Sub(min) / 2)
	var first, second []model.LogRecord
	for _, r := range records {
		if r.Timestamp.Before(mid) {
			first = append(first, r)
		} else {
			second = append(second, r)
		}
	}
	return aggregate.ComputeDrift(first, second, thresholds)
}
