package model

import "time"

// Shared defaults used across the client, TUI, and API server.
const (
	DefaultQueryLimit      = 1000
	DefaultFieldValueLimit = 100

	DefaultExploreRefresh   = 10 * time.Second
	DefaultDashboardRefresh = 30 * time.Second

	// ReferenceRatePerMinute is the ingest rate that maps to a 100%
	// activity gauge.
	ReferenceRatePerMinute = 10.0

	DefaultWarningThreshold  = 20.0
	DefaultCriticalThreshold = 50.0
)

// MatchAll is the wildcard query that matches every record.
const MatchAll = "*"

// TimeMarker prefixes the time-range component of a textual query.
const TimeMarker = "_time:"
