package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prismview/prism/internal/aggregate"
	"github.com/prismview/prism/internal/geometry"
	"github.com/prismview/prism/internal/logparse"
	"github.com/prismview/prism/internal/model"
)

// Chart canvas defaults, in abstract drawing units. Clients scale the
// returned coordinates to their own viewport.
const (
	chartRadius    = 100.0
	treemapWidth   = 400.0
	treemapHeight  = 300.0
	stackedBuckets = 5 * time.Minute
)

// handleCharts runs one query and returns ready-to-draw geometry for
// every chart type: slice paths for pies and donuts, stacked series for
// the timeline, treemap rectangles, and radar vertices for the gauges.
func (s *Server) handleCharts(c *gin.Context) {
	records, _, _, ok := s.runQuery(c, "charts")
	if !ok {
		return
	}

	levels := aggregate.TopFieldValues(records, "level", 6)
	services := aggregate.TopFieldValues(records, "service", 10)
	hosts := aggregate.TopFieldValues(records, "host", 8)

	buckets := aggregate.BucketCounts(records, stackedBuckets)
	names, counts := stackInput(records, buckets)

	gauges := aggregate.Gauges(records)
	metrics := make([]geometry.RadarMetric, 0, len(gauges))
	for _, g := range gauges {
		metrics = append(metrics, geometry.RadarMetric{Name: g.Name, Value: g.Value})
	}

	c.JSON(http.StatusOK, gin.H{
		"levels_pie":     geometry.PieSlices(levels, chartRadius),
		"hosts_donut":    geometry.DonutSlices(hosts, chartRadius, geometry.DefaultInnerFraction),
		"services_map":   geometry.TreemapLayout(services, treemapWidth, treemapHeight),
		"timeline_stack": geometry.Stack(names, counts),
		"gauges_radar":   geometry.RadarPoints(metrics, chartRadius),
		"bucket_starts":  bucketStarts(buckets),
	})
}

// stackInput splits the bucket axis into one count series per severity
// level, in stacking order. Unrecognized levels fall into the trailing
// "unknown" series so the stack always sums to the bucket counts.
func stackInput(records []model.LogRecord, buckets []model.TimeBucket) ([]string, [][]int) {
	names := append(logparse.StackOrder(), "unknown")
	index := make(map[int64]int, len(buckets))
	for i, b := range buckets {
		index[b.Start.Unix()] = i
	}
	byLevel := make(map[string][]int, len(names))
	for _, n := range names {
		byLevel[n] = make([]int, len(buckets))
	}
	width := int64(stackedBuckets.Seconds())
	for _, r := range records {
		start := r.Timestamp.Unix() / width * width
		i, ok := index[start]
		if !ok {
			continue
		}
		level := r.Level()
		if _, known := byLevel[level]; !known {
			level = "unknown"
		}
		byLevel[level][i]++
	}
	counts := make([][]int, 0, len(names))
	for _, n := range names {
		counts = append(counts, byLevel[n])
	}
	return names, counts
}

func bucketStarts(buckets []model.TimeBucket) []time.Time {
	starts := make([]time.Time, 0, len(buckets))
	for _, b := range buckets {
		starts = append(starts, b.Start)
	}
	return starts
}
