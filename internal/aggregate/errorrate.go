package aggregate

import (
	"strings"
	"time"

	"github.com/prismview/prism/internal/model"
)

// Trend direction of the error rate over the last hours.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// trendMinBuckets is the minimum number of (zero-filled) hourly buckets the
// observed span must cover before a trend is computed.
const trendMinBuckets = 24

// IsErrorLevel reports whether a level string belongs to the error tier.
func IsErrorLevel(level string) bool {
	switch strings.ToUpper(level) {
	case "ERROR", "FATAL", "CRITICAL":
		return true
	}
	return false
}

// IsWarnLevel reports whether a level string belongs to the warning tier.
func IsWarnLevel(level string) bool {
	switch strings.ToUpper(level) {
	case "WARN", "WARNING":
		return true
	}
	return false
}

// ErrorStats summarizes error volume over a record set.
type ErrorStats struct {
	Total      int
	ErrorCount int
	Rate       float64 // percent of records in the error tier
	Trend      string
}

// ComputeErrorStats derives the error rate and its trend. The trend
// compares the error volume of the most recent 3 hourly buckets against
// the preceding 3: more than 20% higher is "up", more than 20% lower is
// "down". Spans shorter than 24 hourly buckets report "stable". Empty
// input yields a zero rate, never a division error.
func ComputeErrorStats(records []model.LogRecord) ErrorStats {
	stats := ErrorStats{Trend: TrendStable}
	if len(records) == 0 {
		return stats
	}

	stats.Total = len(records)
	errorRecords := make([]model.LogRecord, 0)
	for _, r := range records {
		if IsErrorLevel(r.Level()) {
			errorRecords = append(errorRecords, r)
		}
	}
	stats.ErrorCount = len(errorRecords)
	stats.Rate = float64(stats.ErrorCount) / float64(stats.Total) * 100

	// Trend needs the full record span zero-filled hourly, so bucket all
	// records and count errors per bucket.
	hourly := BucketCounts(records, time.Hour)
	if len(hourly) < trendMinBuckets {
		return stats
	}

	errorsPerHour := make(map[int64]int)
	for _, r := range errorRecords {
		start := r.Timestamp.Unix() / 3600 * 3600
		errorsPerHour[start]++
	}

	recent, prior := 0, 0
	for i, b := range hourly {
		switch {
		case i >= len(hourly)-3:
			recent += errorsPerHour[b.Start.Unix()]
		case i >= len(hourly)-6:
			prior += errorsPerHour[b.Start.Unix()]
		}
	}

	switch {
	case float64(recent) > float64(prior)*1.2:
		stats.Trend = TrendUp
	case float64(recent) < float64(prior)*0.8:
		stats.Trend = TrendDown
	}
	return stats
}
