package model

// SectorQuote is one sector ETF's daily percent change, the input to the
// heatmap layout. Stale marks a sector whose data could not be fetched;
// it still gets a tile so the grid never shows a hole.
type SectorQuote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	PercentChange float64 `json:"percent_change"`
	Stale         bool    `json:"stale"`
}

// Rect is a tile placement inside the unit square.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// HeatmapTile is one laid-out sector tile. RelativeArea values sum to 1
// over the tile set; ColorValue is in [-1, 1] with positive on the hot
// (red, price up) end and negative on the cool (green, price down) end.
type HeatmapTile struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	PercentChange float64 `json:"percent_change"`
	RelativeArea  float64 `json:"relative_area"`
	ColorValue    float64 `json:"color_value"`
	Stale         bool    `json:"stale"`
	Rect          Rect    `json:"rect"`
}
