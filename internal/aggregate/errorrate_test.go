package aggregate

import (
	"math"
	"testing"
	"time"

	"github.com/prismview/prism/internal/model"
)

func TestErrorRateArithmetic(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	var records []model.LogRecord
	for i := 0; i < 91; i++ {
		records = append(records, makeRecord(base.Add(time.Duration(i)*time.Second), "INFO", "api"))
	}
	for i := 0; i < 7; i++ {
		records = append(records, makeRecord(base, "ERROR", "api"))
	}
	for i := 0; i < 2; i++ {
		records = append(records, makeRecord(base, "FATAL", "api"))
	}

	stats := ComputeErrorStats(records)
	if stats.Total != 100 {
		t.Fatalf("Total = %d, want 100", stats.Total)
	}
	if stats.ErrorCount != 9 {
		t.Errorf("ErrorCount = %d, want 9", stats.ErrorCount)
	}
	if math.Abs(stats.Rate-9.0) > 0.05 {
		t.Errorf("Rate = %.2f, want 9.0", stats.Rate)
	}
}

func TestErrorLevelTier(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"ERROR", true}, {"error", true}, {"Error", true},
		{"FATAL", true}, {"fatal", true},
		{"CRITICAL", true}, {"critical", true},
		{"WARN", false}, {"INFO", false}, {"DEBUG", false},
		{"unknown", false}, {"", false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsErrorLevel(tt.level); got != tt.want {
				t.Errorf("IsErrorLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestErrorStatsEmpty(t *testing.T) {
	stats := ComputeErrorStats(nil)
	if stats.Rate != 0 {
		t.Errorf("Rate = %v, want 0", stats.Rate)
	}
	if stats.Trend != TrendStable {
		t.Errorf("Trend = %q, want stable", stats.Trend)
	}
}

func TestErrorTrendNeedsFullDay(t *testing.T) {
	// Records spanning only a few hours never report a trend.
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	var records []model.LogRecord
	for h := 0; h < 5; h++ {
		records = append(records, makeRecord(base.Add(time.Duration(h)*time.Hour), "ERROR", "api"))
	}
	stats := ComputeErrorStats(records)
	if stats.Trend != TrendStable {
		t.Errorf("Trend = %q for a 5 hour span, want stable", stats.Trend)
	}
}

func TestErrorTrendDirection(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// One INFO record per hour for 30 hours keeps the span wide and the
	// hourly buckets populated.
	span := func() []model.LogRecord {
		var records []model.LogRecord
		for h := 0; h < 30; h++ {
			records = append(records, makeRecord(base.Add(time.Duration(h)*time.Hour), "INFO", "api"))
		}
		return records
	}

	errorsAt := func(records []model.LogRecord, hour, count int) []model.LogRecord {
		for i := 0; i < count; i++ {
			records = append(records, makeRecord(base.Add(time.Duration(hour)*time.Hour), "ERROR", "api"))
		}
		return records
	}

	t.Run("up", func(t *testing.T) {
		records := span()
		// prior window (hours 24-26): 3 errors; recent (hours 27-29): 10.
		records = errorsAt(records, 24, 3)
		records = errorsAt(records, 28, 10)
		if got := ComputeErrorStats(records).Trend; got != TrendUp {
			t.Errorf("Trend = %q, want up", got)
		}
	})

	t.Run("down", func(t *testing.T) {
		records := span()
		records = errorsAt(records, 24, 10)
		records = errorsAt(records, 28, 3)
		if got := ComputeErrorStats(records).Trend; got != TrendDown {
			t.Errorf("Trend = %q, want down", got)
		}
	})

	t.Run("stable", func(t *testing.T) {
		records := span()
		records = errorsAt(records, 24, 10)
		records = errorsAt(records, 28, 10)
		if got := ComputeErrorStats(records).Trend; got != TrendStable {
			t.Errorf("Trend = %q, want stable", got)
		}
	})
}
