package logstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prismview/prism/internal/model"
)

// Store endpoint paths, relative to the configured base URL.
const (
	pathQuery       = "/select/logsql/query"
	pathStatsQuery  = "/select/logsql/stats_query"
	pathFieldNames  = "/select/logsql/field_names"
	pathFieldValues = "/select/logsql/field_values"
	pathHealth      = "/health"
)

// Config configures a log store client.
type Config struct {
	BaseURL string
	Timeout time.Duration // 0 = 30s
	Logger  *zap.Logger   // nil = no logging
}

// Client implements model.LogQuerier against the log store's HTTP query API.
// Construct one explicitly with New and pass it where needed; there is no
// package-level shared client.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New creates a client for the store at cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("logstore: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("logstore: invalid base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}, nil
}

// Query executes a filter query and returns the matching records together
// with scan statistics.
func (c *Client) Query(ctx context.Context, req model.QueryRequest) ([]model.LogRecord, model.ScanStats, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = model.DefaultQueryLimit
	}

	params := url.Values{}
	params.Set("query", req.Query)
	params.Set("limit", strconv.Itoa(limit))
	if req.Offset > 0 {
		params.Set("offset", strconv.Itoa(req.Offset))
	}
	addTimeRange(params, req)

	body, err := c.get(ctx, pathQuery, params)
	if err != nil {
		return nil, model.ScanStats{}, fmt.Errorf("logstore: query: %w", err)
	}

	records := c.normalizeRecords(body)
	stats := model.ScanStats{
		RowCount:     len(records),
		BytesScanned: int64(len(body)),
	}
	c.log.Debug("query executed",
		zap.String("query", req.Query),
		zap.Int("rows", stats.RowCount),
		zap.Int64("bytes", stats.BytesScanned))
	return records, stats, nil
}

// StatsQuery fetches pre-aggregated statistics for a query.
func (c *Client) StatsQuery(ctx context.Context, req model.QueryRequest) ([]model.StatPoint, error) {
	params := url.Values{}
	params.Set("query", req.Query)
	addTimeRange(params, req)

	body, err := c.get(ctx, pathStatsQuery, params)
	if err != nil {
		return nil, fmt.Errorf("logstore: stats query: %w", err)
	}
	return parseStatPoints(body), nil
}

// FieldNames lists known field names. Failures degrade to an empty list:
// this feeds autocomplete, which is best-effort.
func (c *Client) FieldNames(ctx context.Context, req model.QueryRequest) ([]string, error) {
	params := url.Values{}
	addTimeRange(params, req)

	body, err := c.get(ctx, pathFieldNames, params)
	if err != nil {
		c.log.Warn("field name discovery failed", zap.Error(err))
		return nil, nil
	}
	return parseValueList(body), nil
}

// FieldValues lists observed values for one field, capped at limit.
// Failures degrade to an empty list.
func (c *Client) FieldValues(ctx context.Context, field string, limit int, req model.QueryRequest) ([]string, error) {
	if limit <= 0 {
		limit = model.DefaultFieldValueLimit
	}
	params := url.Values{}
	params.Set("field", field)
	params.Set("limit", strconv.Itoa(limit))
	addTimeRange(params, req)

	body, err := c.get(ctx, pathFieldValues, params)
	if err != nil {
		c.log.Warn("field value discovery failed", zap.String("field", field), zap.Error(err))
		return nil, nil
	}
	return parseValueList(body), nil
}

// Ping reports whether the store answers its liveness probe.
func (c *Client) Ping(ctx context.Context) bool {
	_, err := c.get(ctx, pathHealth, nil)
	if err != nil {
		c.log.Debug("ping failed", zap.Error(err))
		return false
	}
	return true
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	return body, nil
}

func addTimeRange(params url.Values, req model.QueryRequest) {
	if !req.Start.IsZero() {
		params.Set("start", req.Start.UTC().Format(time.RFC3339))
	}
	if !req.End.IsZero() {
		params.Set("end", req.End.UTC().Format(time.RFC3339))
	}
}
