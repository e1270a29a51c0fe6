package aggregate

import (
	"math"

	"github.com/prismview/prism/internal/model"
)

// ActivityGrid is the hour-of-week activity matrix: one cell per
// (day-of-week, hour-of-day) in local time, incremented once per record.
type ActivityGrid struct {
	Cells [7][24]int // [weekday][hour], Sunday = 0
	Peak  int
}

// HourOfWeek builds the activity grid for a record set.
func HourOfWeek(records []model.LogRecord) ActivityGrid {
	var grid ActivityGrid
	for _, r := range records {
		local := r.Timestamp.Local()
		day := int(local.Weekday())
		hour := local.Hour()
		grid.Cells[day][hour]++
		if grid.Cells[day][hour] > grid.Peak {
			grid.Peak = grid.Cells[day][hour]
		}
	}
	return grid
}

// Intensity maps a cell to a five-step color scale with thresholds at
// 20/40/60/80% of the peak cell value.
func (g ActivityGrid) Intensity(day, hour int) int {
	if g.Peak == 0 {
		return 0
	}
	ratio := float64(g.Cells[day][hour]) / float64(g.Peak)
	switch {
	case ratio < 0.2:
		return 0
	case ratio < 0.4:
		return 1
	case ratio < 0.6:
		return 2
	case ratio < 0.8:
		return 3
	default:
		return 4
	}
}

// Gauge names reported by Gauges.
const (
	GaugeErrorRate = "error_rate"
	GaugeWarnRate  = "warn_rate"
	GaugeActivity  = "activity"
)

// Status thresholds per gauge. Rates are percentages; activity is the
// 0-100 scaled ingest rate.
const (
	errorRateWarnAt = 2.0
	errorRateCritAt = 10.0
	warnRateWarnAt  = 10.0
	warnRateCritAt  = 25.0
	activityWarnAt  = 50.0
	activityCritAt  = 80.0
)

// Gauges computes the three dashboard gauges: error rate, warning rate,
// and activity level. Activity is records per minute over the observed
// span, scaled against a reference rate of 10/minute and clamped to 100.
func Gauges(records []model.LogRecord) []model.GaugeMetric {
	total := len(records)
	errors, warns := 0, 0
	for _, r := range records {
		level := r.Level()
		if IsErrorLevel(level) {
			errors++
		} else if IsWarnLevel(level) {
			warns++
		}
	}

	var errorRate, warnRate float64
	if total > 0 {
		errorRate = float64(errors) / float64(total) * 100
		warnRate = float64(warns) / float64(total) * 100
	}
	activity := activityLevel(records)

	return []model.GaugeMetric{
		{Name: GaugeErrorRate, Value: errorRate, Status: gaugeStatus(errorRate, errorRateWarnAt, errorRateCritAt)},
		{Name: GaugeWarnRate, Value: warnRate, Status: gaugeStatus(warnRate, warnRateWarnAt, warnRateCritAt)},
		{Name: GaugeActivity, Value: activity, Status: gaugeStatus(activity, activityWarnAt, activityCritAt)},
	}
}

func activityLevel(records []model.LogRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	minTS, maxTS := records[0].Timestamp, records[0].Timestamp
	for _, r := range records[1:] {
		if r.Timestamp.Before(minTS) {
			minTS = r.Timestamp
		}
		if r.Timestamp.After(maxTS) {
			maxTS = r.Timestamp
		}
	}

	spanMinutes := maxTS.Sub(minTS).Minutes()
	if spanMinutes < 1 {
		spanMinutes = 1
	}
	perMinute := float64(len(records)) / spanMinutes
	return math.Min(100, perMinute/model.ReferenceRatePerMinute*100)
}

func gaugeStatus(value, warnAt, critAt float64) model.GaugeStatus {
	switch {
	case value >= critAt:
		return model.GaugeCritical
	case value >= warnAt:
		return model.GaugeWarn
	default:
		return model.GaugeOK
	}
}
