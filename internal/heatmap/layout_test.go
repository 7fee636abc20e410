package heatmap

import (
	"math"
	"testing"

	"MarketWarRoom/internal/model"
)

func quotes(changes map[string]float64) []model.SectorQuote {
	out := make([]model.SectorQuote, 0, len(changes))
	for sym, chg := range changes {
		out = append(out, model.SectorQuote{Symbol: sym, Name: sym, PercentChange: chg})
	}
	return out
}

func tileBySymbol(tiles []model.HeatmapTile, symbol string) model.HeatmapTile {
	for _, t := range tiles {
		if t.Symbol == symbol {
			return t
		}
	}
	return model.HeatmapTile{}
}

func TestLayout_EmptyInput(t *testing.T) {
	tiles := Layout(nil, DefaultOptions)
	if len(tiles) != 0 {
		t.Errorf("expected empty tile set, got %d", len(tiles))
	}
}

func TestLayout_NonFiniteQuoteIsIsolated(t *testing.T) {
	// A division artifact in one quote must not take down the grid: the
	// bad quote becomes a stale flat tile and the rest lays out normally.
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		q := []model.SectorQuote{
			{Symbol: "XLK", PercentChange: 3.0},
			{Symbol: "BAD", PercentChange: bad},
			{Symbol: "XLF", PercentChange: -1.0},
		}
		tiles := Layout(q, DefaultOptions)
		if len(tiles) != 3 {
			t.Fatalf("change %v: expected 3 tiles, got %d", bad, len(tiles))
		}

		badTile := tileBySymbol(tiles, "BAD")
		if !badTile.Stale {
			t.Errorf("change %v: bad quote should be marked stale", bad)
		}
		if badTile.PercentChange != 0 || badTile.ColorValue != 0 {
			t.Errorf("change %v: bad quote should render flat, got pct=%v color=%v",
				bad, badTile.PercentChange, badTile.ColorValue)
		}
		if badTile.RelativeArea <= 0 {
			t.Errorf("change %v: bad quote lost its tile area", bad)
		}

		if got := tileBySymbol(tiles, "XLK"); got.ColorValue <= 0 || got.Stale {
			t.Errorf("change %v: healthy XLK tile corrupted: %+v", bad, got)
		}
		if got := tileBySymbol(tiles, "XLF"); got.ColorValue >= 0 || got.Stale {
			t.Errorf("change %v: healthy XLF tile corrupted: %+v", bad, got)
		}

		sum := 0.0
		for _, tile := range tiles {
			sum += tile.RelativeArea
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("change %v: areas sum to %.6f, want 1", bad, sum)
		}
	}
}

func TestLayout_SectorScenario(t *testing.T) {
	// XLK +3.0, XLF -1.0, XLE 0.0: three tiles, areas ordered by |change|,
	// XLK on the hot end, XLF on the cool end, XLE neutral.
	tiles := Layout(quotes(map[string]float64{"XLK": 3.0, "XLF": -1.0, "XLE": 0.0}), DefaultOptions)
	if len(tiles) != 3 {
		t.Fatalf("expected 3 tiles, got %d", len(tiles))
	}

	xlk := tileBySymbol(tiles, "XLK")
	xlf := tileBySymbol(tiles, "XLF")
	xle := tileBySymbol(tiles, "XLE")

	if !(xlk.RelativeArea >= xlf.RelativeArea && xlf.RelativeArea >= xle.RelativeArea) {
		t.Errorf("area ordering violated: XLK=%.4f XLF=%.4f XLE=%.4f",
			xlk.RelativeArea, xlf.RelativeArea, xle.RelativeArea)
	}
	if xle.RelativeArea <= 0 {
		t.Error("zero-change tile must keep a strictly positive area")
	}
	if xlk.ColorValue <= 0 {
		t.Errorf("positive change must map to the hot end, got %.3f", xlk.ColorValue)
	}
	if xlf.ColorValue >= 0 {
		t.Errorf("negative change must map to the cool end, got %.3f", xlf.ColorValue)
	}
	if xle.ColorValue != 0 {
		t.Errorf("flat change must map to neutral, got %.3f", xle.ColorValue)
	}
}

func TestLayout_CardinalityPreserved(t *testing.T) {
	for n := 1; n <= 11; n++ {
		qs := make([]model.SectorQuote, n)
		for i := range qs {
			qs[i] = model.SectorQuote{Symbol: string(rune('A' + i)), PercentChange: float64(i) - 3}
		}
		tiles := Layout(qs, DefaultOptions)
		if len(tiles) != n {
			t.Errorf("n=%d: got %d tiles", n, len(tiles))
		}
	}
}

func TestLayout_AreaMonotoneInMagnitude(t *testing.T) {
	tiles := Layout(quotes(map[string]float64{
		"A": 4.2, "B": -3.5, "C": 2.0, "D": -0.7, "E": 0.3, "F": 0.0,
	}), DefaultOptions)
	for _, a := range tiles {
		for _, b := range tiles {
			if math.Abs(a.PercentChange) > math.Abs(b.PercentChange) && a.RelativeArea < b.RelativeArea {
				t.Errorf("monotonicity violated: |%s|=%.2f area %.4f < |%s|=%.2f area %.4f",
					a.Symbol, a.PercentChange, a.RelativeArea, b.Symbol, b.PercentChange, b.RelativeArea)
			}
		}
	}
}

func TestLayout_AreasNormalized(t *testing.T) {
	tiles := Layout(quotes(map[string]float64{"A": 1.5, "B": -2.5, "C": 0.2}), DefaultOptions)
	sum := 0.0
	for _, tile := range tiles {
		if tile.RelativeArea <= 0 {
			t.Errorf("%s: non-positive area %.4f", tile.Symbol, tile.RelativeArea)
		}
		sum += tile.RelativeArea
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("areas sum to %.6f, want 1", sum)
	}
}

func TestLayout_ColorSaturates(t *testing.T) {
	tiles := Layout(quotes(map[string]float64{"UP": 12.0, "DOWN": -9.0, "MILD": 2.0}), DefaultOptions)
	if got := tileBySymbol(tiles, "UP").ColorValue; got != 1 {
		t.Errorf("outlier gain should saturate at +1, got %.3f", got)
	}
	if got := tileBySymbol(tiles, "DOWN").ColorValue; got != -1 {
		t.Errorf("outlier loss should saturate at -1, got %.3f", got)
	}
	if got := tileBySymbol(tiles, "MILD").ColorValue; got != 0.5 {
		t.Errorf("2%% on a ±4%% scale should map to 0.5, got %.3f", got)
	}
}

func TestLayout_OrderIndependent(t *testing.T) {
	a := []model.SectorQuote{
		{Symbol: "XLK", PercentChange: 3.0},
		{Symbol: "XLF", PercentChange: -1.0},
		{Symbol: "XLE", PercentChange: 0.5},
	}
	b := []model.SectorQuote{a[2], a[0], a[1]}

	ta := Layout(a, DefaultOptions)
	tb := Layout(b, DefaultOptions)
	for i := range ta {
		if ta[i] != tb[i] {
			t.Errorf("tile %d differs across input orders: %+v vs %+v", i, ta[i], tb[i])
		}
	}
}
