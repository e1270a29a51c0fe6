package httpserver

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/prismview/prism/internal/aggregate"
	"github.com/prismview/prism/internal/export"
	"github.com/prismview/prism/internal/model"
	"github.com/prismview/prism/internal/query"
)

// Server exposes the dashboard aggregations as a JSON API.
type Server struct {
	addr      string
	store     model.LogQuerier
	log       *zap.Logger
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	metrics   *serverMetrics
	registry  *prometheus.Registry
	drift     model.DriftThresholds
	startTime time.Time
}

// NewServer creates the API server in front of a log store client.
func NewServer(addr string, store model.LogQuerier, drift model.DriftThresholds, log *zap.Logger) *Server {
	if addr == "" {
		addr = "0.0.0.0:3000"
	}
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	registry := prometheus.NewRegistry()
	return &Server{
		addr:     addr,
		store:    store,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
		metrics:  newServerMetrics(registry),
		registry: registry,
		drift:    drift,
	}
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	r := s.routes()

	s.server = &http.Server{
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()
	s.log.Info("api server listening", zap.String("addr", s.addr))

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/fields", s.handleFields)
	r.GET("/api/fields/:name/values", s.handleFieldValues)
	r.POST("/api/search", s.handleSearch)
	r.POST("/api/dashboard", s.handleDashboard)
	r.POST("/api/charts", s.handleCharts)
	r.POST("/api/drift", s.handleDrift)
	r.GET("/api/export/rules", s.handleExportRules)
	r.POST("/api/export/csv", s.handleExportCSV)
	r.POST("/api/export/snapshot", s.handleExportSnapshot)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	return r
}

// searchRequest is the JSON body shared by the search, dashboard, and
// drift endpoints.
type searchRequest struct {
	Query  string    `json:"query" binding:"required"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
}

func (r searchRequest) toModel() model.QueryRequest {
	return model.QueryRequest{
		Query:  r.Query,
		Start:  r.Start,
		End:    r.End,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	alive := s.store.Ping(c.Request.Context())
	status := http.StatusOK
	text := "ok"
	if !alive {
		status = http.StatusServiceUnavailable
		text = "store unreachable"
	}
	c.JSON(status, gin.H{
		"status":    text,
		"uptime":    time.Since(s.startTime).String(),
		"store_up":  alive,
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleFields(c *gin.Context) {
	names, _ := s.store.FieldNames(c.Request.Context(), model.QueryRequest{})
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"fields": names})
}

func (s *Server) handleFieldValues(c *gin.Context) {
	limit := model.DefaultFieldValueLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	values, _ := s.store.FieldValues(c.Request.Context(), c.Param("name"), limit, model.QueryRequest{})
	if values == nil {
		values = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"field": c.Param("name"), "values": values})
}

// runQuery validates and executes the query for a request body, recording
// metrics. It writes the error response itself and returns ok=false on
// failure.
func (s *Server) runQuery(c *gin.Context, endpoint string) ([]model.LogRecord, model.ScanStats, searchRequest, bool) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body or missing query field"})
		return nil, model.ScanStats{}, req, false
	}

	if result := query.Validate(req.Query); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error})
		return nil, model.ScanStats{}, req, false
	}

	s.metrics.queriesTotal.WithLabelValues(endpoint).Inc()
	started := time.Now()
	records, stats, err := s.store.Query(c.Request.Context(), req.toModel())
	s.metrics.queryDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		s.metrics.queryErrors.Inc()
		s.log.Warn("store query failed", zap.String("endpoint", endpoint), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return nil, model.ScanStats{}, req, false
	}
	return records, stats, req, true
}

func (s *Server) handleSearch(c *gin.Context) {
	records, stats, _, ok := s.runQuery(c, "search")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"records": recordsJSON(records),
		"stats": gin.H{
			"row_count":     stats.RowCount,
			"bytes_scanned": stats.BytesScanned,
		},
	})
}

func (s *Server) handleDashboard(c *gin.Context) {
	records, stats, _, ok := s.runQuery(c, "dashboard")
	if !ok {
		return
	}

	// Field discovery rides along for the query bar; best-effort.
	fields, _ := s.store.FieldNames(c.Request.Context(), model.QueryRequest{})
	if fields == nil {
		fields = []string{}
	}

	errStats := aggregate.ComputeErrorStats(records)
	grid := aggregate.HourOfWeek(records)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"row_count":     stats.RowCount,
			"bytes_scanned": stats.BytesScanned,
		},
		"fields":       fields,
		"levels":       aggregate.TopFieldValues(records, "level", 6),
		"services":     aggregate.TopFieldValues(records, "service", 10),
		"hosts":        aggregate.TopFieldValues(records, "host", 8),
		"timeline":     aggregate.BucketCounts(records, 5*time.Minute),
		"error_stats":  errStats,
		"gauges":       aggregate.Gauges(records),
		"hour_of_week": grid.Cells,
	})
}

// driftRequest runs two queries over disjoint periods and compares them.
type driftRequest struct {
	Query         string    `json:"query" binding:"required"`
	BaselineStart time.Time `json:"baseline_start" binding:"required"`
	BaselineEnd   time.Time `json:"baseline_end" binding:"required"`
	CurrentStart  time.Time `json:"current_start" binding:"required"`
	CurrentEnd    time.Time `json:"current_end" binding:"required"`
}

func (s *Server) handleDrift(c *gin.Context) {
	var req driftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if result := query.Validate(req.Query); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error})
		return
	}

	var baseline, current []model.LogRecord
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		baseline, _, err = s.store.Query(ctx, model.QueryRequest{
			Query: req.Query, Start: req.BaselineStart, End: req.BaselineEnd,
		})
		return err
	})
	g.Go(func() error {
		var err error
		current, _, err = s.store.Query(ctx, model.QueryRequest{
			Query: req.Query, Start: req.CurrentStart, End: req.CurrentEnd,
		})
		return err
	})
	s.metrics.queriesTotal.WithLabelValues("drift").Add(2)
	if err := g.Wait(); err != nil {
		s.metrics.queryErrors.Inc()
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"thresholds": s.drift,
		"drift":      aggregate.ComputeDrift(baseline, current, s.drift),
	})
}

func (s *Server) handleExportRules(c *gin.Context) {
	rules, err := export.AlertRules(s.drift)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/yaml", []byte(rules))
}

func (s *Server) handleExportCSV(c *gin.Context) {
	var req driftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	baseline, _, err := s.store.Query(c.Request.Context(), model.QueryRequest{
		Query: req.Query, Start: req.BaselineStart, End: req.BaselineEnd,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	current, _, err := s.store.Query(c.Request.Context(), model.QueryRequest{
		Query: req.Query, Start: req.CurrentStart, End: req.CurrentEnd,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	csv, err := export.DriftCSV(aggregate.ComputeDrift(baseline, current, s.drift))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="drift.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

// handleExportSnapshot dumps the query result plus its in-window drift
// as a pretty-printed JSON document for archiving or diffing.
func (s *Server) handleExportSnapshot(c *gin.Context) {
	records, _, req, ok := s.runQuery(c, "snapshot")
	if !ok {
		return
	}

	mid := req.Start.Add(req.End.Sub(req.Start) / 2)
	if req.Start.IsZero() || req.End.IsZero() {
		mid = observedMidpoint(records)
	}
	var baseline, current []model.LogRecord
	for _, r := range records {
		if r.Timestamp.Before(mid) {
			baseline = append(baseline, r)
		} else {
			current = append(current, r)
		}
	}

	doc, err := export.SnapshotJSON(req.Query, records, aggregate.ComputeDrift(baseline, current, s.drift), time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="snapshot.json"`)
	c.Data(http.StatusOK, "application/json", []byte(doc))
}

// observedMidpoint halves the actual timestamp span of a record set.
func observedMidpoint(records []model.LogRecord) time.Time {
	if len(records) == 0 {
		return time.Time{}
	}
	min, max := records[0].Timestamp, records[0].Timestamp
	for _, r := range records[1:] {
		if r.Timestamp.Before(min) {
			min = r.Timestamp
		}
		if r.Timestamp.After(max) {
			max = r.Timestamp
		}
	}
	return min.Add(max.Sub(min) / 2)
}

func recordsJSON(records []model.LogRecord) []gin.H {
	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		out = append(out, gin.H{
			"timestamp": r.Timestamp,
			"message":   r.Message,
			"fields":    r.Fields,
		})
	}
	return out
}
