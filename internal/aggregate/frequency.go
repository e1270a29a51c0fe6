// Package aggregate computes the derived views behind every dashboard
// chart. All functions are pure: they take a record slice plus parameters
// and never mutate their input. Callers re-invoke them whenever the record
// set changes; caching is the caller's concern.
package aggregate

import (
	"sort"

	"github.com/prismview/prism/internal/model"
)

// CountByField groups records by the named field and counts occurrences.
// Records missing the field count under "unknown".
func CountByField(records []model.LogRecord, field string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Field(field)]++
	}
	return counts
}

// TopN returns the n highest-count entries in descending count order.
// Entries beyond n are dropped, not folded into an "other" group. Ties keep
// the order the sort produced them in; there is no secondary key, so equal
// counts are returned in unspecified relative order.
func TopN(counts map[string]int, n int) []model.DimensionCount {
	entries := make([]model.DimensionCount, 0, len(counts))
	for value, count := range counts {
		entries = append(entries, model.DimensionCount{Value: value, Count: count})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// TopFieldValues is CountByField followed by TopN.
func TopFieldValues(records []model.LogRecord, field string, n int) []model.DimensionCount {
	return TopN(CountByField(records, field), n)
}
