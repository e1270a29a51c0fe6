// Package logparse canonicalizes severity levels found in remote log
// records. Stores emit whatever their producers wrote: short forms,
// mixed case, spelled-out words, or numeric pino/bunyan levels. The
// aggregation layer wants one spelling per tier.
package logparse

import "strings"

// severityKeys are the record field names that may carry a level, in
// lookup order.
var severityKeys = []string{"level", "severity", "lvl"}

// SeverityKeys returns the field names checked for a severity value.
func SeverityKeys() []string { return severityKeys }

// StackOrder returns the canonical severity stacking order for charts,
// lowest severity first. Levels outside this list stack under the
// "unknown" catch-all so no record drops out of a stacked total.
func StackOrder() []string {
	return []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "CRITICAL", "FATAL"}
}

// NormalizeSeverity converts severity spellings to consistent all caps
// short forms. Values that do not look like a severity at all are
// returned upper-cased but otherwise untouched, so genuinely unleveled
// records stay distinguishable from INFO.
func NormalizeSeverity(severity string) string {
	normalized := strings.ToUpper(strings.TrimSpace(severity))

	switch normalized {
	case "TRACE", "TRAC", "TRC":
		return "TRACE"
	case "DEBUG", "DEBU", "DBG", "DEB":
		return "DEBUG"
	case "INFO", "INFORMATION", "INF":
		return "INFO"
	case "WARN", "WARNING", "WRNG", "WRN":
		return "WARN"
	case "ERROR", "ERR", "ERRO":
		return "ERROR"
	case "FATAL", "FATL", "FTL":
		return "FATAL"
	case "CRITICAL", "CRIT", "CRT":
		return "CRITICAL"
	case "PANIC", "PNC":
		return "FATAL"
	}

	if len(normalized) >= 4 {
		switch normalized[:4] {
		case "INFO":
			return "INFO"
		case "WARN":
			return "WARN"
		case "ERRO":
			return "ERROR"
		case "DEBU":
			return "DEBUG"
		case "TRAC":
			return "TRACE"
		case "FATA":
			return "FATAL"
		case "CRIT":
			return "CRITICAL"
		}
	}
	return normalized
}

// NumericLevel converts pino/bunyan numeric levels to strings.
func NumericLevel(level int) string {
	switch {
	case level < 20:
		return "TRACE"
	case level < 30:
		return "DEBUG"
	case level < 40:
		return "INFO"
	case level < 50:
		return "WARN"
	case level < 60:
		return "ERROR"
	}
	return "FATAL"
}
