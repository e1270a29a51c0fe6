package model

import "context"

// LogQuerier is the read contract against the remote log store. The HTTP
// client implements it; the TUI and the API server consume it.
type LogQuerier interface {
	Query(ctx context.Context, req QueryRequest) ([]LogRecord, ScanStats, error)
	StatsQuery(ctx context.Context, req QueryRequest) ([]StatPoint, error)
	FieldNames(ctx context.Context, req QueryRequest) ([]string, error)
	FieldValues(ctx context.Context, field string, limit int, req QueryRequest) ([]string, error)
	Ping(ctx context.Context) bool
}
