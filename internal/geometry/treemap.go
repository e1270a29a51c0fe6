package geometry

import (
	"math"

	"github.com/prismview/prism/internal/model"
)

// Rect is one laid-out treemap rectangle.
type Rect struct {
	Label  string
	Value  int
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// TreemapLayout fills the container with one rectangle per item using a
// greedy row heuristic: items are taken in input order and placed left to
// right at an ideal row height, wrapping to a new row when the running
// width would spill past the container. Each row then stretches to the
// full container width with its height set by the row's share of the
// total value, so every rectangle's area is exactly its value's share of
// width*height and rows tile the container without overlap. This is not a
// squarified treemap; aspect ratios are whatever the fill produces.
func TreemapLayout(items []model.DimensionCount, width, height float64) []Rect {
	total := 0
	for _, it := range items {
		total += it.Count
	}
	if total <= 0 || width <= 0 || height <= 0 {
		return nil
	}

	// Partition into rows at the ideal row height.
	idealRows := math.Ceil(math.Sqrt(float64(len(items))))
	idealHeight := height / idealRows

	var rows [][]model.DimensionCount
	var row []model.DimensionCount
	rowWidth := 0.0
	for _, it := range items {
		area := float64(it.Count) / float64(total) * width * height
		itemWidth := area / idealHeight
		if len(row) > 0 && rowWidth+itemWidth > width {
			rows = append(rows, row)
			row = nil
			rowWidth = 0
		}
		row = append(row, it)
		rowWidth += itemWidth
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	// Lay each row out across the full width; row height follows the
	// row's value share so per-item areas stay exact.
	rects := make([]Rect, 0, len(items))
	y := 0.0
	for _, row := range rows {
		rowTotal := 0
		for _, it := range row {
			rowTotal += it.Count
		}
		rowHeight := float64(rowTotal) / float64(total) * height

		x := 0.0
		for _, it := range row {
			w := float64(it.Count) / float64(rowTotal) * width
			rects = append(rects, Rect{
				Label:  it.Value,
				Value:  it.Count,
				X:      x,
				Y:      y,
				Width:  w,
				Height: rowHeight,
			})
			x += w
		}
		y += rowHeight
	}
	return rects
}
