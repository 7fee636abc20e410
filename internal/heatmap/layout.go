// Package heatmap turns the day's sector percent changes into a laid-out
// treemap: tile area follows the magnitude of the move, tile color follows
// its sign. Red is up and green is down, the convention retail investors
// in Asian markets expect, which is the inverse of most non-financial
// heatmaps.
package heatmap

import (
	"math"
	"sort"

	"MarketWarRoom/internal/model"
)

// Options tunes the visual encoding. Both knobs come from the dashboard
// config, not from hidden constants.
type Options struct {
	// MinAreaPct is the weight floor in percent points. A flat or stale
	// sector is sized as if it had moved this much, so it never collapses
	// into an invisible sliver.
	MinAreaPct float64
	// SaturationPct is the |percent change| at which the color scale
	// saturates; larger moves map to the same fully saturated color so a
	// single outlier cannot wash out the rest of the grid.
	SaturationPct float64
}

// DefaultOptions matches the production dashboard: 0.5% floor, ±4% range.
var DefaultOptions = Options{MinAreaPct: 0.5, SaturationPct: 4.0}

// Layout computes one tile per quote. Tile areas are normalized to sum to
// 1 and packed into the unit square with a squarified treemap; the result
// is sorted by descending area (symbol as tie-break), so the output is
// deterministic and independent of input order. An empty quote set yields
// an empty tile set.
//
// A quote with a NaN or Inf percent change cannot be sized or colored, so
// it is demoted to a stale zero-change tile; the rest of the set lays out
// normally.
func Layout(quotes []model.SectorQuote, opts Options) []model.HeatmapTile {
	if opts.MinAreaPct <= 0 {
		opts.MinAreaPct = DefaultOptions.MinAreaPct
	}
	if opts.SaturationPct <= 0 {
		opts.SaturationPct = DefaultOptions.SaturationPct
	}
	if len(quotes) == 0 {
		return []model.HeatmapTile{}
	}

	tiles := make([]model.HeatmapTile, len(quotes))
	total := 0.0
	for i, q := range quotes {
		pct, stale := q.PercentChange, q.Stale
		if math.IsNaN(pct) || math.IsInf(pct, 0) {
			pct, stale = 0, true
		}
		weight := math.Abs(pct)
		if weight < opts.MinAreaPct {
			weight = opts.MinAreaPct
		}
		tiles[i] = model.HeatmapTile{
			Symbol:        q.Symbol,
			Name:          q.Name,
			PercentChange: pct,
			RelativeArea:  weight,
			ColorValue:    colorValue(pct, opts.SaturationPct),
			Stale:         stale,
		}
		total += weight
	}
	for i := range tiles {
		tiles[i].RelativeArea /= total
	}

	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].RelativeArea != tiles[j].RelativeArea {
			return tiles[i].RelativeArea > tiles[j].RelativeArea
		}
		return tiles[i].Symbol < tiles[j].Symbol
	})

	areas := make([]float64, len(tiles))
	for i, t := range tiles {
		areas[i] = t.RelativeArea
	}
	rects := squarify(areas, model.Rect{X: 0, Y: 0, W: 1, H: 1})
	for i := range tiles {
		tiles[i].Rect = rects[i]
	}
	return tiles
}

// colorValue maps a percent change onto [-1, 1], saturating at ±satPct.
// Positive stays positive (hot/red end), negative stays negative
// (cool/green end); magnitude is monotone in |pct| up to saturation.
func colorValue(pct, satPct float64) float64 {
	v := pct / satPct
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
