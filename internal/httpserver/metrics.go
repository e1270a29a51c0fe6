package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
)

// serverMetrics are the Prometheus collectors for the API surface.
type serverMetrics struct {
	queriesTotal  *prometheus.CounterVec
	queryErrors   prometheus.Counter
	queryDuration prometheus.Histogram
}

func newServerMetrics(reg *prometheus.Registry) *serverMetrics {
	m := &serverMetrics{
		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prism_queries_total",
			Help: "Log store queries issued, by endpoint.",
		}, []string{"endpoint"}),
		queryErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "prism_query_errors_total",
			Help: "Log store queries that failed.",
		}),
		queryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "prism_query_duration_seconds",
			Help:    "Wall time of log store queries.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.queriesTotal, m.queryErrors, m.queryDuration)
	return m
}
