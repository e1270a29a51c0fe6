package geometry

import "math"

// RadarMetric is one named 0-100 value plotted on a radar axis.
type RadarMetric struct {
	Name  string
	Value float64
}

// RadarPoint is a plotted radar vertex: the axis direction at full radius
// and the value point along it.
type RadarPoint struct {
	Name  string
	Axis  Point
	Value Point
}

// RadarPoints spaces the metrics evenly around a circle, first axis
// pointing up, and places each metric's vertex at radius*value/100 along
// its axis. The returned points connect in order into a closed polygon.
func RadarPoints(metrics []RadarMetric, radius float64) []RadarPoint {
	n := len(metrics)
	if n == 0 {
		return nil
	}

	points := make([]RadarPoint, 0, n)
	for i, m := range metrics {
		angle := float64(i)/float64(n)*2*math.Pi - math.Pi/2
		value := m.Value
		if value < 0 {
			value = 0
		}
		if value > 100 {
			value = 100
		}
		r := radius * value / 100
		points = append(points, RadarPoint{
			Name:  m.Name,
			Axis:  Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)},
			Value: Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)},
		})
	}
	return points
}
