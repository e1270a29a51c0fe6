package query

import (
	"strings"

	"github.com/prismview/prism/internal/model"
)

// Build assembles the textual filter query for a list of builder clauses.
// Clauses missing a field or value are skipped; values containing
// whitespace or a colon are double-quoted. Clauses are joined with " AND "
// in input order. An empty result becomes the match-all wildcard.
func Build(clauses []model.FilterClause) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if c.Field == "" || c.Value == "" {
			continue
		}
		parts = append(parts, c.Field+string(c.Operator)+quoteValue(c.Value))
	}
	if len(parts) == 0 {
		return model.MatchAll
	}
	return strings.Join(parts, " AND ")
}

func quoteValue(v string) string {
	if strings.ContainsAny(v, " \t:") {
		return `"` + v + `"`
	}
	return v
}

// ParsedQuery is the best-effort decomposition of a free-text query.
// Clauses are opaque segments; edits made in free-text mode do not
// round-trip back into structured builder clauses.
type ParsedQuery struct {
	Clauses   []string
	TimeRange string
}

// Parse splits a textual query on the " AND " separator. A segment
// containing the time-range marker becomes the TimeRange; everything else
// is kept as an opaque clause.
func Parse(text string) ParsedQuery {
	var parsed ParsedQuery
	for _, seg := range strings.Split(text, " AND ") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if strings.Contains(seg, model.TimeMarker) {
			parsed.TimeRange = seg
			continue
		}
		parsed.Clauses = append(parsed.Clauses, seg)
	}
	return parsed
}
