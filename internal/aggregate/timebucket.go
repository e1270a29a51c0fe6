package aggregate

import (
	"time"

	"github.com/prismview/prism/internal/model"
)

// BucketCounts groups records into fixed-width time buckets spanning the
// full observed range. A record's bucket start is its timestamp truncated
// to the bucket width (epoch-aligned), and every bucket between the
// earliest and latest observed bucket is materialized, so gaps appear as
// true zero counts rather than missing points. Buckets are returned in
// ascending order. Empty input yields an empty slice.
func BucketCounts(records []model.LogRecord, width time.Duration) []model.TimeBucket {
	if len(records) == 0 || width <= 0 {
		return nil
	}

	counts := make(map[int64]int)
	var minStart, maxStart int64
	for i, r := range records {
		start := r.Timestamp.Unix() / int64(width.Seconds()) * int64(width.Seconds())
		counts[start]++
		if i == 0 || start < minStart {
			minStart = start
		}
		if i == 0 || start > maxStart {
			maxStart = start
		}
	}

	step := int64(width.Seconds())
	buckets := make([]model.TimeBucket, 0, (maxStart-minStart)/step+1)
	for start := minStart; start <= maxStart; start += step {
		buckets = append(buckets, model.TimeBucket{
			Start: time.Unix(start, 0).UTC(),
			Count: counts[start],
		})
	}
	return buckets
}
