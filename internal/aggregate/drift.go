package aggregate

import (
	"math"
	"sort"
	"strings"

	"github.com/prismview/prism/internal/model"
)

type pairKey struct {
	service  string
	severity string
}

func countPairs(records []model.LogRecord) map[pairKey]int {
	counts := make(map[pairKey]int)
	for _, r := range records {
		key := pairKey{
			service:  r.Service(),
			severity: strings.ToUpper(r.Level()),
		}
		counts[key]++
	}
	return counts
}

// ComputeDrift compares a current period against a baseline period per
// (service, severity) pair. Percentage change is delta relative to the
// baseline count; the tier comes from the absolute percentage change
// measured against the two thresholds (warning <= |pct| < critical is
// warning, |pct| >= critical is critical).
//
// A zero baseline leaves the percentage undefined; such pairs report a
// percentage of 0 and are classified by their absolute delta against the
// same thresholds read as counts.
//
// Results are sorted by service then severity so exports are stable.
func ComputeDrift(baseline, current []model.LogRecord, th model.DriftThresholds) []model.DriftRecord {
	if th.Warning <= 0 {
		th.Warning = model.DefaultWarningThreshold
	}
	if th.Critical <= 0 {
		th.Critical = model.DefaultCriticalThreshold
	}

	baseCounts := countPairs(baseline)
	curCounts := countPairs(current)

	keys := make(map[pairKey]struct{}, len(baseCounts)+len(curCounts))
	for k := range baseCounts {
		keys[k] = struct{}{}
	}
	for k := range curCounts {
		keys[k] = struct{}{}
	}

	records := make([]model.DriftRecord, 0, len(keys))
	for k := range keys {
		base := baseCounts[k]
		cur := curCounts[k]
		delta := cur - base

		rec := model.DriftRecord{
			Service:  k.service,
			Severity: k.severity,
			Baseline: base,
			Current:  cur,
			Delta:    delta,
		}

		if base > 0 {
			rec.PercentChange = float64(delta) / float64(base) * 100
			rec.Tier = classify(math.Abs(rec.PercentChange), th)
		} else {
			rec.Tier = classify(math.Abs(float64(delta)), th)
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Service != records[j].Service {
			return records[i].Service < records[j].Service
		}
		return records[i].Severity < records[j].Severity
	})
	return records
}

func classify(magnitude float64, th model.DriftThresholds) model.DriftTier {
	switch {
	case magnitude >= th.Critical:
		return model.DriftCritical
	case magnitude >= th.Warning:
		return model.DriftWarning
	default:
		return model.DriftNormal
	}
}
