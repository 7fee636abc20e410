package heatmap

import (
	"math"

	"MarketWarRoom/internal/model"
)

// squarify packs the given areas into bounds using the squarified treemap
// algorithm of Bruls, Huizing and van Wijk: rows are laid along the
// shorter side of the remaining space, and a row is closed as soon as
// adding the next area would worsen the row's worst aspect ratio.
//
// Areas must be positive, sorted descending, and sum to the area of
// bounds. Returned rects are index-aligned with the input.
func squarify(areas []float64, bounds model.Rect) []model.Rect {
	out := make([]model.Rect, 0, len(areas))
	start := 0
	for start < len(areas) {
		short := math.Min(bounds.W, bounds.H)

		end := start + 1
		rowSum := areas[start]
		ratio := worstRatio(areas[start:end], rowSum, short)
		for end < len(areas) {
			nextSum := rowSum + areas[end]
			nextRatio := worstRatio(areas[start:end+1], nextSum, short)
			if nextRatio > ratio {
				break
			}
			rowSum = nextSum
			ratio = nextRatio
			end++
		}

		rects, rest := layRow(areas[start:end], rowSum, bounds)
		out = append(out, rects...)
		bounds = rest
		start = end
	}
	return out
}

// worstRatio returns the worst (largest) aspect ratio among row items when
// the row is laid with thickness rowSum/short along a side of length short.
func worstRatio(row []float64, rowSum, short float64) float64 {
	if short <= 0 || rowSum <= 0 {
		return math.Inf(1)
	}
	thickness := rowSum / short
	worst := 0.0
	for _, a := range row {
		length := a / thickness
		r := math.Max(thickness/length, length/thickness)
		if r > worst {
			worst = r
		}
	}
	return worst
}

// layRow places one row of areas along the shorter side of bounds and
// returns the placed rects together with the remaining free rect.
func layRow(row []float64, rowSum float64, bounds model.Rect) ([]model.Rect, model.Rect) {
	rects := make([]model.Rect, len(row))
	if bounds.W >= bounds.H {
		// Vertical strip against the left edge.
		thickness := rowSum / bounds.H
		y := bounds.Y
		for i, a := range row {
			h := a / thickness
			rects[i] = model.Rect{X: bounds.X, Y: y, W: thickness, H: h}
			y += h
		}
		return rects, model.Rect{X: bounds.X + thickness, Y: bounds.Y, W: bounds.W - thickness, H: bounds.H}
	}
	// Horizontal strip against the top edge.
	thickness := rowSum / bounds.W
	x := bounds.X
	for i, a := range row {
		w := a / thickness
		rects[i] = model.Rect{X: x, Y: bounds.Y, W: w, H: thickness}
		x += w
	}
	return rects, model.Rect{X: bounds.X, Y: bounds.Y + thickness, W: bounds.W, H: bounds.H - thickness}
}
