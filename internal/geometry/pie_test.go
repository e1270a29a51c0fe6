package geometry

import (
	"math"
	"testing"

	"github.com/prismview/prism/internal/model"
)

func TestPieSlices(t *testing.T) {
	series := []model.DimensionCount{
		{Value: "a", Count: 50},
		{Value: "b", Count: 25},
		{Value: "c", Count: 25},
	}

	slices := PieSlices(series, 100)
	if len(slices) != 3 {
		t.Fatalf("got %d slices, want 3", len(slices))
	}

	if slices[0].StartAngle != 0 {
		t.Errorf("first slice starts at %v, want 0", slices[0].StartAngle)
	}
	if math.Abs(slices[0].EndAngle-180) > 1e-9 {
		t.Errorf("50%% slice ends at %v, want 180", slices[0].EndAngle)
	}

	// Slices are contiguous and in input order.
	for i := 1; i < len(slices); i++ {
		if math.Abs(slices[i].StartAngle-slices[i-1].EndAngle) > 1e-9 {
			t.Errorf("slice %d not contiguous: starts %v after end %v",
				i, slices[i].StartAngle, slices[i-1].EndAngle)
		}
	}
	if math.Abs(slices[len(slices)-1].EndAngle-360) > 1e-9 {
		t.Errorf("last slice ends at %v, want 360", slices[len(slices)-1].EndAngle)
	}

	// Arc points sit on the circle.
	for _, p := range slices[0].Outer {
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-100) > 1e-9 {
			t.Errorf("outer point radius = %v, want 100", r)
		}
	}
	if len(slices[0].Inner) != 0 {
		t.Errorf("pie slice has inner arc, want none")
	}
}

func TestDonutSlices(t *testing.T) {
	series := []model.DimensionCount{
		{Value: "a", Count: 1},
		{Value: "b", Count: 1},
	}

	slices := DonutSlices(series, 100, 0)
	if len(slices) != 2 {
		t.Fatalf("got %d slices, want 2", len(slices))
	}

	for _, s := range slices {
		if len(s.Inner) == 0 {
			t.Fatalf("donut slice %q has no inner arc", s.Label)
		}
		for _, p := range s.Inner {
			r := math.Hypot(p.X, p.Y)
			if math.Abs(r-60) > 1e-9 {
				t.Errorf("inner point radius = %v, want 60 (default fraction 0.6)", r)
			}
		}
		// Inner arc runs backward: its first point aligns with the outer
		// arc's last angle so the path closes.
		outerEnd := s.Outer[len(s.Outer)-1]
		innerStart := s.Inner[0]
		outerAngle := math.Atan2(outerEnd.Y, outerEnd.X)
		innerAngle := math.Atan2(innerStart.Y, innerStart.X)
		if math.Abs(outerAngle-innerAngle) > 1e-9 {
			t.Errorf("inner arc does not start where outer ends: %v vs %v", innerAngle, outerAngle)
		}
	}
}

func TestPieZeroTotal(t *testing.T) {
	if got := PieSlices([]model.DimensionCount{{Value: "a", Count: 0}}, 100); got != nil {
		t.Errorf("zero total: got %v, want nil", got)
	}
	if got := PieSlices(nil, 100); got != nil {
		t.Errorf("empty series: got %v, want nil", got)
	}
}

func TestRadarPoints(t *testing.T) {
	metrics := []RadarMetric{
		{Name: "a", Value: 100},
		{Name: "b", Value: 50},
		{Name: "c", Value: 0},
		{Name: "d", Value: 100},
	}

	points := RadarPoints(metrics, 100)
	if len(points) != 4 {
		t.Fatalf("got %d points, want 4", len(points))
	}

	// First axis points up (angle -90°): x ~ 0, y = -radius.
	if math.Abs(points[0].Axis.X) > 1e-9 || math.Abs(points[0].Axis.Y+100) > 1e-9 {
		t.Errorf("first axis = %+v, want (0, -100)", points[0].Axis)
	}
	// Full value sits on the axis tip.
	if math.Abs(points[0].Value.Y+100) > 1e-9 {
		t.Errorf("full-value point = %+v, want on axis tip", points[0].Value)
	}
	// Half value sits halfway out.
	r := math.Hypot(points[1].Value.X, points[1].Value.Y)
	if math.Abs(r-50) > 1e-9 {
		t.Errorf("half-value radius = %v, want 50", r)
	}
	// Zero value collapses to center.
	if math.Hypot(points[2].Value.X, points[2].Value.Y) > 1e-9 {
		t.Errorf("zero-value point = %+v, want origin", points[2].Value)
	}
	// Axes spaced at 90° for 4 metrics: second axis points right.
	if math.Abs(points[1].Axis.X-100) > 1e-9 {
		t.Errorf("second axis = %+v, want (100, 0)", points[1].Axis)
	}
}

func TestRadarClampsValues(t *testing.T) {
	points := RadarPoints([]RadarMetric{{Name: "hot", Value: 250}}, 100)
	r := math.Hypot(points[0].Value.X, points[0].Value.Y)
	if math.Abs(r-100) > 1e-9 {
		t.Errorf("over-range value radius = %v, want clamped to 100", r)
	}
}

func TestRadarEmpty(t *testing.T) {
	if got := RadarPoints(nil, 100); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
