package geometry

import (
	"math"
	"testing"

	"github.com/prismview/prism/internal/model"
)

func TestTreemapAreasSumToContainer(t *testing.T) {
	items := []model.DimensionCount{
		{Value: "a", Count: 40},
		{Value: "b", Count: 25},
		{Value: "c", Count: 15},
		{Value: "d", Count: 10},
		{Value: "e", Count: 6},
		{Value: "f", Count: 4},
	}

	rects := TreemapLayout(items, 200, 100)
	if len(rects) != len(items) {
		t.Fatalf("got %d rects, want %d", len(rects), len(items))
	}

	totalArea := 0.0
	for _, r := range rects {
		totalArea += r.Width * r.Height
	}
	if math.Abs(totalArea-200*100) > 1e-6 {
		t.Errorf("total area = %v, want %v", totalArea, 200*100)
	}

	// Each rectangle's area is its proportional share.
	for i, r := range rects {
		want := float64(items[i].Count) / 100.0 * 200 * 100
		if math.Abs(r.Width*r.Height-want) > 1e-6 {
			t.Errorf("rect %q area = %v, want %v", r.Label, r.Width*r.Height, want)
		}
	}
}

func TestTreemapNoOverlap(t *testing.T) {
	items := []model.DimensionCount{
		{Value: "a", Count: 5},
		{Value: "b", Count: 4},
		{Value: "c", Count: 3},
		{Value: "d", Count: 2},
		{Value: "e", Count: 1},
	}

	rects := TreemapLayout(items, 100, 100)
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			a, b := rects[i], rects[j]
			xOverlap := a.X < b.X+b.Width-1e-9 && b.X < a.X+a.Width-1e-9
			yOverlap := a.Y < b.Y+b.Height-1e-9 && b.Y < a.Y+a.Height-1e-9
			if xOverlap && yOverlap {
				t.Errorf("rects %q and %q overlap: %+v vs %+v", a.Label, b.Label, a, b)
			}
		}
	}

	// Everything stays inside the container.
	for _, r := range rects {
		if r.X < -1e-9 || r.Y < -1e-9 || r.X+r.Width > 100+1e-9 || r.Y+r.Height > 100+1e-9 {
			t.Errorf("rect %q escapes container: %+v", r.Label, r)
		}
	}
}

func TestTreemapSingleItem(t *testing.T) {
	rects := TreemapLayout([]model.DimensionCount{{Value: "all", Count: 7}}, 80, 40)
	if len(rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(rects))
	}
	r := rects[0]
	if r.Width != 80 || r.Height != 40 || r.X != 0 || r.Y != 0 {
		t.Errorf("single item should fill the container, got %+v", r)
	}
}

func TestTreemapEmpty(t *testing.T) {
	if got := TreemapLayout(nil, 100, 100); got != nil {
		t.Errorf("empty items: got %v, want nil", got)
	}
	if got := TreemapLayout([]model.DimensionCount{{Value: "a", Count: 0}}, 100, 100); got != nil {
		t.Errorf("zero counts: got %v, want nil", got)
	}
}

func TestStack(t *testing.T) {
	names := []string{"INFO", "WARN", "ERROR"}
	counts := [][]int{
		{10, 20, 30},
		{1, 2, 3},
		{0, 5, 0},
	}

	stacked := Stack(names, counts)
	if len(stacked) != 3 {
		t.Fatalf("got %d series, want 3", len(stacked))
	}

	wantTops := [][]int{
		{10, 20, 30},
		{11, 22, 33},
		{11, 27, 33},
	}
	for i, series := range stacked {
		if series.Name != names[i] {
			t.Errorf("series %d name = %q, want %q", i, series.Name, names[i])
		}
		for b := range wantTops[i] {
			if series.Tops[b] != wantTops[i][b] {
				t.Errorf("series %q bucket %d top = %d, want %d",
					series.Name, b, series.Tops[b], wantTops[i][b])
			}
		}
	}
}

func TestStackRaggedInput(t *testing.T) {
	stacked := Stack([]string{"a", "b"}, [][]int{{1, 2, 3}, {1}})
	if len(stacked[1].Tops) != 3 {
		t.Fatalf("short series not padded: %v", stacked[1].Tops)
	}
	if stacked[1].Tops[2] != 3 {
		t.Errorf("padded bucket top = %d, want 3 (zero own count)", stacked[1].Tops[2])
	}
}

func TestStackEmpty(t *testing.T) {
	if got := Stack(nil, nil); len(got) != 0 {
		t.Errorf("got %d series, want 0", len(got))
	}
}
