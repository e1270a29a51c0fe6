package geometry

// StackedSeries is one group's plot line in a stacked chart: for each
// bucket, the group's own count plus everything stacked beneath it.
type StackedSeries struct {
	Name   string
	Counts []int // the group's own per-bucket counts
	Tops   []int // cumulative height including all prior groups
}

// Stack accumulates per-bucket running totals across groups in input
// order, so each group plots at its own count plus all prior groups'
// counts (stack-from-zero). All count slices must share one bucket axis;
// shorter slices are treated as zero-padded.
func Stack(names []string, counts [][]int) []StackedSeries {
	buckets := 0
	for _, c := range counts {
		if len(c) > buckets {
			buckets = len(c)
		}
	}

	running := make([]int, buckets)
	result := make([]StackedSeries, 0, len(counts))
	for i, c := range counts {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		series := StackedSeries{
			Name:   name,
			Counts: make([]int, buckets),
			Tops:   make([]int, buckets),
		}
		for b := 0; b < buckets; b++ {
			own := 0
			if b < len(c) {
				own = c[b]
			}
			running[b] += own
			series.Counts[b] = own
			series.Tops[b] = running[b]
		}
		result = append(result, series)
	}
	return result
}
