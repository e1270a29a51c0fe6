package model

import "time"

// LogRecord represents a single log entry returned by the log store.
// It is the canonical type handed from the transport layer to every
// aggregation and view.
type LogRecord struct {
	Timestamp time.Time
	Message   string
	Fields    map[string]string // all remaining record fields, by name
}

// Field returns the named field value, or "unknown" when absent or empty.
func (r LogRecord) Field(name string) string {
	if v, ok := r.Fields[name]; ok && v != "" {
		return v
	}
	return "unknown"
}

// Level returns the record's severity level field.
func (r LogRecord) Level() string { return r.Field("level") }

// Service returns the record's service field.
func (r LogRecord) Service() string { return r.Field("service") }

// Host returns the record's host field.
func (r LogRecord) Host() string { return r.Field("host") }

// Operator is a comparison operator in the visual query builder.
type Operator string

// Filter operators and their query-language tokens.
const (
	OpEquals      Operator = "="
	OpNotEquals   Operator = "!="
	OpContains    Operator = ":"
	OpNotContains Operator = "!:"
	OpRegex       Operator = "~"
	OpNotRegex    Operator = "!~"
)

// FilterClause is one field/operator/value condition in the query builder.
type FilterClause struct {
	Field    string
	Operator Operator
	Value    string
}

// QueryRequest describes one query against the log store. Zero Start/End
// means the store is queried unbounded; time filtering, if wanted, belongs
// in the query text itself.
type QueryRequest struct {
	Query  string
	Start  time.Time
	End    time.Time
	Limit  int // 0 = DefaultQueryLimit
	Offset int
}

// ScanStats summarizes one query execution. The store does not report
// execution time, so ExecDuration is always zero.
type ScanStats struct {
	RowCount     int
	BytesScanned int64
	ExecDuration time.Duration
}

// StatPoint is one pre-aggregated statistic returned by the store's
// stats endpoint.
type StatPoint struct {
	Labels map[string]string
	Value  float64
}

// DimensionCount represents grouped counts by a single dimension value
// (for example service or host).
type DimensionCount struct {
	Value string
	Count int
}

// TimeBucket is one fixed-width time bucket and its record count.
type TimeBucket struct {
	Start time.Time
	Count int
}

// DriftTier classifies the severity of a period-over-baseline change.
type DriftTier string

const (
	DriftNormal   DriftTier = "normal"
	DriftWarning  DriftTier = "warning"
	DriftCritical DriftTier = "critical"
)

// DriftThresholds are the warning/critical absolute-percentage-change
// boundaries for drift classification.
type DriftThresholds struct {
	Warning  float64
	Critical float64
}

// DriftRecord is the computed drift for one (service, severity) pair.
type DriftRecord struct {
	Service       string
	Severity      string
	Baseline      int
	Current       int
	Delta         int
	PercentChange float64
	Tier          DriftTier
}

// GaugeStatus is the three-step color classification of a gauge metric.
type GaugeStatus string

const (
	GaugeOK       GaugeStatus = "ok"
	GaugeWarn     GaugeStatus = "warn"
	GaugeCritical GaugeStatus = "critical"
)

// GaugeMetric is one named 0-100 dashboard gauge.
type GaugeMetric struct {
	Name   string
	Value  float64
	Status GaugeStatus
}
