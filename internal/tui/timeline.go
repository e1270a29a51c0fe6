package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/prismview/prism/internal/logparse"
	"github.com/prismview/prism/internal/model"
)

// timelineLevels is the stacking order for the timeline chart, lowest
// severity at the bottom. Records with any other level stack on top
// under the "unknown" series so bucket totals stay exact.
var timelineLevels = append(logparse.StackOrder(), "unknown")

// TimelinePanel shows log volume over time as stacked per-severity bars,
// one bar per five minute bucket.
type TimelinePanel struct{}

func (p *TimelinePanel) ID() string    { return "timeline" }
func (p *TimelinePanel) Title() string { return "Timeline" }

func (p *TimelinePanel) Render(s *snapshot, width, height int) string {
	if len(s.timeline) == 0 {
		return helpStyle.Render("No data available")
	}

	chartHeight := height - 2
	if chartHeight < 3 {
		chartHeight = 3
	}
	maxBars := width / 2
	if maxBars < 1 {
		maxBars = 1
	}
	buckets := s.timeline
	if len(buckets) > maxBars {
		buckets = buckets[len(buckets)-maxBars:]
	}

	byLevel := bucketLevelCounts(s.records, buckets)

	bc := barchart.New(width, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)
	for i := range buckets {
		var values []barchart.BarValue
		for _, level := range timelineLevels {
			if n := byLevel[level][i]; n > 0 {
				values = append(values, barchart.BarValue{
					Name:  level,
					Value: float64(n),
					Style: severityStyle(level),
				})
			}
		}
		if len(values) == 0 {
			values = append(values, barchart.BarValue{Name: "EMPTY", Value: 0, Style: severityStyle("unknown")})
		}
		bc.Push(barchart.BarData{Label: "", Values: values})
	}
	bc.Draw()

	span := fmt.Sprintf("%s - %s",
		buckets[0].Start.Format("15:04"),
		buckets[len(buckets)-1].Start.Add(5*time.Minute).Format("15:04"))
	return bc.View() + "\n" + helpStyle.Render(span)
}

// bucketLevelCounts splits the bucket axis by severity level. Records
// outside the shown buckets are ignored.
func bucketLevelCounts(records []model.LogRecord, buckets []model.TimeBucket) map[string][]int {
	index := make(map[int64]int, len(buckets))
	for i, b := range buckets {
		index[b.Start.Unix()] = i
	}
	counts := make(map[string][]int, len(timelineLevels))
	for _, level := range timelineLevels {
		counts[level] = make([]int, len(buckets))
	}
	width := int64(5 * 60)
	for _, r := range records {
		start := r.Timestamp.Unix() / width * width
		i, ok := index[start]
		if !ok {
			continue
		}
		level := r.Level()
		if _, known := counts[level]; !known {
			level = "unknown"
		}
		counts[level][i]++
	}
	return counts
}
