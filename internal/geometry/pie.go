// Package geometry maps aggregated series onto renderable primitives:
// polar slices for pie/donut charts, radar polygons, stacked-series
// offsets, and a greedy treemap layout. Everything here is plain math on
// the aggregation output; rendering (terminal cells, SVG, whatever) is the
// caller's business.
package geometry

import (
	"math"

	"github.com/prismview/prism/internal/model"
)

// DefaultInnerFraction is the donut hole radius as a fraction of the
// outer radius.
const DefaultInnerFraction = 0.6

// Point is a 2D Cartesian coordinate relative to the chart center.
type Point struct {
	X float64
	Y float64
}

// Slice is one pie or donut wedge. Angles are degrees from the first
// slice's start at 0; Outer traces the outer arc in slice order, and for
// donuts Inner traces the inner arc in reverse so Outer+Inner form one
// closed annular path.
type Slice struct {
	Label      string
	Value      int
	StartAngle float64
	EndAngle   float64
	Outer      []Point
	Inner      []Point
}

// arcSteps controls arc point density: one point roughly every 6 degrees,
// always at least the two endpoints.
func arcSteps(sweep float64) int {
	steps := int(sweep/6) + 1
	if steps < 2 {
		steps = 2
	}
	return steps
}

func polar(radius, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{X: radius * math.Cos(rad), Y: radius * math.Sin(rad)}
}

func arcPoints(radius, fromDeg, toDeg float64) []Point {
	steps := arcSteps(math.Abs(toDeg - fromDeg))
	points := make([]Point, 0, steps)
	for i := 0; i < steps; i++ {
		angle := fromDeg + (toDeg-fromDeg)*float64(i)/float64(steps-1)
		points = append(points, polar(radius, angle))
	}
	return points
}

// PieSlices converts a value series into pie wedges on a circle of the
// given radius. Each slice's angular sweep is its proportion of the total;
// slices come out in input order with the first starting at angle 0.
// Zero-total input yields no slices.
func PieSlices(series []model.DimensionCount, radius float64) []Slice {
	return slices(series, radius, 0)
}

// DonutSlices is PieSlices with an annular path: the inner radius is
// innerFraction of the outer radius (DefaultInnerFraction when <= 0).
func DonutSlices(series []model.DimensionCount, radius, innerFraction float64) []Slice {
	if innerFraction <= 0 {
		innerFraction = DefaultInnerFraction
	}
	return slices(series, radius, radius*innerFraction)
}

func slices(series []model.DimensionCount, outer, inner float64) []Slice {
	total := 0
	for _, s := range series {
		total += s.Count
	}
	if total <= 0 {
		return nil
	}

	result := make([]Slice, 0, len(series))
	angle := 0.0
	for _, s := range series {
		sweep := float64(s.Count) / float64(total) * 360
		slice := Slice{
			Label:      s.Value,
			Value:      s.Count,
			StartAngle: angle,
			EndAngle:   angle + sweep,
			Outer:      arcPoints(outer, angle, angle+sweep),
		}
		if inner > 0 {
			// Inner arc runs backward so the combined outline closes.
			slice.Inner = arcPoints(inner, angle+sweep, angle)
		}
		result = append(result, slice)
		angle += sweep
	}
	return result
}
